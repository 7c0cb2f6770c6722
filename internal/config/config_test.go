package config

import (
	"os"
	"testing"
)

func TestConfigLoad_Defaults(t *testing.T) {
	_ = os.Unsetenv("BRIEFLY_DB_DRIVER")
	_ = os.Unsetenv("BRIEFLY_HTTP_PORT")
	_ = os.Unsetenv("BRIEFLY_COMPLETION_MODEL")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "jsonfile" || cfg.HTTPPort != 5001 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.CompletionModel != "tngtech/deepseek-r1t2-chimera:free" {
		t.Fatalf("unexpected default model: %s", cfg.CompletionModel)
	}
	if cfg.CompletionTimeoutSeconds != 120 {
		t.Fatalf("unexpected default completion timeout: %d", cfg.CompletionTimeoutSeconds)
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	_ = os.Setenv("BRIEFLY_DB_DRIVER", "sqlite")
	defer func() { _ = os.Unsetenv("BRIEFLY_DB_DRIVER") }()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("db driver env override failed, got %s", cfg.DBDriver)
	}
}

func TestConfigLoad_RejectsUnknownDriver(t *testing.T) {
	_ = os.Setenv("BRIEFLY_DB_DRIVER", "postgres")
	defer func() { _ = os.Unsetenv("BRIEFLY_DB_DRIVER") }()

	if _, err := New(); err == nil {
		t.Fatal("expected error for unsupported DB_DRIVER")
	}
}
