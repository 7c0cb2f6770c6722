package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRunGenerateArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate-article" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var in map[string]string
		if err := json.Unmarshal(body, &in); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if in["topic"] != "solar" {
			t.Errorf("topic = %q, want solar", in["topic"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"researchSummary":"R","articleDraft":"D"}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	if err := runGenerateArticle(srv.URL, "solar", &out); err != nil {
		t.Fatalf("runGenerateArticle: %v", err)
	}
	if !strings.Contains(out.String(), "articleDraft") {
		t.Errorf("output missing draft: %s", out.String())
	}
}

func TestRunGenerateArticleEmptyTopic(t *testing.T) {
	if err := runGenerateArticle("http://localhost:0", "", io.Discard); err == nil {
		t.Fatal("expected error for empty topic")
	}
}

func TestRunGenerateScriptKinds(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"script":"S"}`))
	}))
	defer srv.Close()

	cases := map[string]string{
		"short":   "/api/generate-short-script",
		"podcast": "/api/generate-podcast-script",
		"youtube": "/api/generate-youtube-script",
	}
	for kind, wantPath := range cases {
		if err := runGenerateScript(srv.URL, kind, "ai", io.Discard); err != nil {
			t.Fatalf("kind %s: %v", kind, err)
		}
		if gotPath != wantPath {
			t.Errorf("kind %s hit %s, want %s", kind, gotPath, wantPath)
		}
	}

	if err := runGenerateScript(srv.URL, "movie", "ai", io.Discard); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestDoGetNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"No leads to export"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := doGet(srv.URL + "/api/leads/export-csv")
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !strings.Contains(err.Error(), "http 404") {
		t.Errorf("error = %v, want http 404 prefix", err)
	}
}
