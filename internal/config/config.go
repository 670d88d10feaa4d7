// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	// Directory holding the flat record files (books.csv, users.csv, loans.csv)
	DataDir string `env:"LIBRARY_DATA_DIR" envDefault:"data"`

	// Circulation policy
	LoanPeriodDays int     `env:"LOAN_PERIOD_DAYS" envDefault:"14"`
	DailyPenalty   float64 `env:"DAILY_PENALTY" envDefault:"1.0"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Validate checks policy values that env tags cannot express.
func (c *Config) Validate() error {
	if c.LoanPeriodDays <= 0 {
		return fmt.Errorf("LOAN_PERIOD_DAYS must be positive, got %d", c.LoanPeriodDays)
	}
	if c.DailyPenalty < 0 {
		return fmt.Errorf("DAILY_PENALTY must not be negative, got %g", c.DailyPenalty)
	}
	return nil
}

// Load parses environment variables and returns a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
