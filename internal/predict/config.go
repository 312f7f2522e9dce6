package predict

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds prediction service configuration.
type Config struct {
	// URL is the base URL of the prediction service.
	URL string `envconfig:"HEALTHPREDICT_API_URL" default:"http://localhost:8000"`

	// Timeout bounds a single prediction request. The call is attempted
	// exactly once; there is no retry layer on top of this.
	Timeout time.Duration `envconfig:"HEALTHPREDICT_API_TIMEOUT" default:"30s"`
}

// ConfigFromEnv builds a Config from HEALTHPREDICT_* environment
// variables, falling back to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read predict config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("HEALTHPREDICT_API_URL is required")
	}
	return nil
}
