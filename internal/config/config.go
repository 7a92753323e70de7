// Package config loads runtime configuration from environment variables and
// an optional YAML file. The core pipeline takes everything through explicit
// parameters; config only feeds the CLI collaborator and the logger.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix namespaces every environment variable (PAYMERGE_LOGGING_LEVEL,
// PAYMERGE_PARSING_LOCATION, ...).
const envPrefix = "PAYMERGE"

// Config is the complete application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Parsing ParsingConfig `yaml:"parsing" envconfig:"PARSING"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// ParsingConfig tunes the extraction pipeline.
type ParsingConfig struct {
	// MaxBreakdownRows caps sample rows per employee breakdown; 0 keeps
	// the schema default of 50.
	MaxBreakdownRows int `yaml:"max_breakdown_rows" envconfig:"MAX_BREAKDOWN_ROWS"`
	// Location overrides the location field on every ingested record.
	Location string `yaml:"location" envconfig:"LOCATION"`
	// ExtraAliases extends the built-in column alias lists per role, for
	// exports localized or renamed beyond the defaults.
	ExtraAliases map[string][]string `yaml:"extra_aliases" envconfig:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

// Load builds configuration in three layers: built-in defaults, the optional
// YAML file named by PAYMERGE_CONFIG_FILE, then environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(envPrefix + "_CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}
	return &cfg, nil
}
