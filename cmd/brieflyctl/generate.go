package main

import (
	"fmt"
	"io"
)

func runGenerateArticle(apiURL, topic string, out io.Writer) error {
	if topic == "" {
		return fmt.Errorf("topic cannot be empty")
	}
	data, err := doPostJSON(apiURL+"/api/generate-article", map[string]string{"topic": topic})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func runGenerateScript(apiURL, kind, topic string, out io.Writer) error {
	if topic == "" {
		return fmt.Errorf("topic cannot be empty")
	}
	var path string
	switch kind {
	case "short":
		path = "/api/generate-short-script"
	case "podcast":
		path = "/api/generate-podcast-script"
	case "youtube":
		path = "/api/generate-youtube-script"
	default:
		return fmt.Errorf("unknown script kind %q (want short, podcast or youtube)", kind)
	}
	data, err := doPostJSON(apiURL+path, map[string]string{"topic": topic})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
