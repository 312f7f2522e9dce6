package auth

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds auth provider configuration.
type Config struct {
	// URL is the base URL of the auth provider, e.g.
	// https://xyzcompany.supabase.co
	URL string `envconfig:"HEALTHPREDICT_AUTH_URL"`

	// APIKey is the provider's public (anon) API key, sent with every
	// request.
	APIKey string `envconfig:"HEALTHPREDICT_AUTH_ANON_KEY"`

	// Timeout bounds a single auth request.
	Timeout time.Duration `envconfig:"HEALTHPREDICT_AUTH_TIMEOUT" default:"15s"`
}

// ConfigFromEnv builds a Config from HEALTHPREDICT_* environment
// variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read auth config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the provider can be reached at all.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("HEALTHPREDICT_AUTH_URL is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("HEALTHPREDICT_AUTH_ANON_KEY is required")
	}
	return nil
}
