package textq

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envPrefix is the prefix for all configuration environment variables.
const envPrefix = "TEXTQ_"

// Config is the process-wide configuration. The store path is the single
// value the core consumes; the log level belongs to the hosting frontend.
type Config struct {
	// StorePath is the on-disk location of the store, opened once at startup.
	StorePath string `env:"DB_PATH" envDefault:"database.db"`
	// LogLevel is the frontend log level: debug, info, warn, or error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig builds the configuration from environment variables
// (TEXTQ_DB_PATH, TEXTQ_LOG_LEVEL), falling back to the defaults above.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks the configuration for values no component could honor.
func (c *Config) validate() error {
	if strings.TrimSpace(c.StorePath) == "" {
		return fmt.Errorf("store path cannot be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}
