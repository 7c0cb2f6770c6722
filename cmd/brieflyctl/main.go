package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag string
	rootCmd = &cobra.Command{
		Use:   "brieflyctl",
		Short: "CLI client for the Briefly backend REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:5001", "Briefly backend base URL")

	// generate subcommand
	generateCmd := &cobra.Command{Use: "generate", Short: "Content generation operations"}

	articleCmd := &cobra.Command{
		Use:   "article TOPIC",
		Short: "Generate a researched article draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerateArticle(apiFlag, args[0], os.Stdout)
		},
	}
	generateCmd.AddCommand(articleCmd)

	scriptCmd := &cobra.Command{
		Use:   "script TOPIC",
		Short: "Generate a script (short, podcast or youtube)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			return runGenerateScript(apiFlag, kind, args[0], os.Stdout)
		},
	}
	scriptCmd.Flags().StringP("kind", "k", "short", "Script kind: short, podcast or youtube")
	generateCmd.AddCommand(scriptCmd)

	rootCmd.AddCommand(generateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
