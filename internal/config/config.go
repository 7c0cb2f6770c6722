package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the BrieflyOS backend.
// Environment variables are parsed from the BRIEFLY_ prefix,
// e.g. BRIEFLY_HTTP_PORT, BRIEFLY_OPENROUTER_API_KEY.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"5001"`

	// Storage Configuration
	DBDriver string `envconfig:"DB_DRIVER" default:"jsonfile"`
	DataDir  string `envconfig:"DATA_DIR" default:"./data"`

	// Completion service Configuration
	OpenRouterAPIKey  string `envconfig:"OPENROUTER_API_KEY" default:""`
	OpenRouterBaseURL string `envconfig:"OPENROUTER_BASE_URL" default:"https://openrouter.ai"`
	CompletionModel   string `envconfig:"COMPLETION_MODEL" default:"tngtech/deepseek-r1t2-chimera:free"`

	// Outbound call budget; article generation makes two sequential calls.
	CompletionTimeoutSeconds int `envconfig:"COMPLETION_TIMEOUT_SECONDS" default:"120"`
}

// Validate checks driver and timeout values after env parsing.
func (c *Config) Validate() error {
	allowedDB := map[string]bool{"jsonfile": true, "sqlite": true}
	if !allowedDB[c.DBDriver] {
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.CompletionTimeoutSeconds <= 0 {
		return fmt.Errorf("COMPLETION_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// New creates a new Config by parsing environment variables.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("BRIEFLY", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Str("data_dir", cfg.DataDir).
		Int("port", cfg.HTTPPort).
		Str("completion_model", cfg.CompletionModel).
		Bool("api_key_present", cfg.OpenRouterAPIKey != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config suitable for tests: jsonfile store in the
// given directory, no live credential.
func NewForTesting(dataDir string) *Config {
	return &Config{
		HTTPPort:                 5001,
		DBDriver:                 "jsonfile",
		DataDir:                  dataDir,
		OpenRouterBaseURL:        "http://localhost:0",
		CompletionModel:          "test-model",
		CompletionTimeoutSeconds: 5,
	}
}

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
