package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	leadsCmd := &cobra.Command{Use: "leads", Short: "Lead operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all leads",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/leads", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	leadsCmd.AddCommand(listCmd)

	var name, email, stage string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a lead",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || email == "" {
				return fmt.Errorf("--name and --email required")
			}
			payload := map[string]string{"name": name, "email": email, "stage": stage}
			data, err := doPostJSON(fmt.Sprintf("%s/api/leads", apiFlag), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&name, "name", "n", "", "Lead name (required)")
	createCmd.Flags().StringVarP(&email, "email", "e", "", "Lead email (required)")
	createCmd.Flags().StringVarP(&stage, "stage", "s", "New", "Pipeline stage")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("email")
	leadsCmd.AddCommand(createCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export leads as CSV to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/leads/export-csv", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	leadsCmd.AddCommand(exportCmd)

	rootCmd.AddCommand(leadsCmd)

	oppsCmd := &cobra.Command{Use: "opportunities", Short: "Opportunity operations"}
	oppsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all opportunities",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/opportunities", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	})
	rootCmd.AddCommand(oppsCmd)

	historyCmd := &cobra.Command{Use: "history", Short: "Generation history operations"}
	historyCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List generation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/history", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	})
	rootCmd.AddCommand(historyCmd)
}
