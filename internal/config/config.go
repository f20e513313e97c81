// Package config loads rbin's YAML configuration.
//
// Precedence, lowest first: built-in defaults, the config file,
// environment variables (RBIN_DB, RBIN_LOG_LEVEL), command-line flags.
// Flags are applied by the cli package.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all rbin configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Engine   EngineConfig   `yaml:"engine"`
	Logging  LoggingConfig  `yaml:"logging"`
	Output   OutputConfig   `yaml:"output"`
}

// DatabaseConfig locates the model catalogue.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// EngineConfig tunes ingestion.
type EngineConfig struct {
	MaxCardinality int  `yaml:"max_cardinality"`
	Canonise       bool `yaml:"canonise"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	File   string `yaml:"file"`   // empty logs to stderr
}

// OutputConfig configures command output.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "rbin.db",
		},
		Engine: EngineConfig{
			MaxCardinality: 64,
			Canonise:       true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults.
// A missing file is not an error; the defaults are used.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes configuration to a YAML file, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("RBIN_DB"); path != "" {
		c.Database.Path = path
	}
	if level := os.Getenv("RBIN_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

var (
	validLevels        = []string{"debug", "info", "warn", "error"}
	validLogFormats    = []string{"json", "console"}
	validOutputFormats = []string{"text", "json"}
)

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if !oneOf(c.Logging.Level, validLevels) {
		return fmt.Errorf("invalid logging.level %q (valid: %v)", c.Logging.Level, validLevels)
	}
	if !oneOf(c.Logging.Format, validLogFormats) {
		return fmt.Errorf("invalid logging.format %q (valid: %v)", c.Logging.Format, validLogFormats)
	}
	if !oneOf(c.Output.Format, validOutputFormats) {
		return fmt.Errorf("invalid output.format %q (valid: %v)", c.Output.Format, validOutputFormats)
	}
	if c.Engine.MaxCardinality < 1 {
		return fmt.Errorf("engine.max_cardinality must be positive, got %d", c.Engine.MaxCardinality)
	}
	return nil
}

func oneOf(v string, valid []string) bool {
	for _, s := range valid {
		if v == s {
			return true
		}
	}
	return false
}
