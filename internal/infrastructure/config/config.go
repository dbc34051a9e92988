package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Amounts
	AmountPrecision int32 `env:"AMOUNT_PRECISION" envDefault:"4"`

	// CSV
	CSVDelimiter string `env:"CSV_DELIMITER" envDefault:","`

	// Metrics (empty disables the textfile export)
	MetricsTextfile string `env:"METRICS_TEXTFILE" envDefault:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	if c.AmountPrecision < 0 || c.AmountPrecision > 18 {
		return fmt.Errorf("AMOUNT_PRECISION must be between 0 and 18, got %d", c.AmountPrecision)
	}
	if utf8.RuneCountInString(c.CSVDelimiter) != 1 {
		return fmt.Errorf("CSV_DELIMITER must be a single character, got %q", c.CSVDelimiter)
	}
	return nil
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSVDelimiter)
	return r
}
