// Package config loads the gridsim command configuration from a YAML file
// and environment variables.
package config

import (
	"os"
	"strconv"

	"github.com/db47h/gridsim"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config contains all gridsim settings.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig configures the grid engine.
type EngineConfig struct {
	// MaxRows caps the number of truth table rows. Tables for circuits with
	// more source combinations are truncated.
	MaxRows int `yaml:"max_rows"`
}

// LoggingConfig configures operational logging.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn" or "error".
	Level string `yaml:"level"`
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			MaxRows: gridsim.DefaultMaxRows,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads the configuration from path, then applies environment variable
// overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, errors.Wrap(err, "reading config file")
		default:
			if err := yaml.Unmarshal(data, c); err != nil {
				return nil, errors.Wrap(err, "parsing config file "+path)
			}
		}
	}
	if err := applyEnvOverrides(c); err != nil {
		return nil, err
	}
	return c, c.Validate()
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Engine.MaxRows <= 0 {
		return errors.Errorf("max_rows must be positive, got %d", c.Engine.MaxRows)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return errors.Errorf("invalid log format: %s (valid: text, json)", c.Logging.Format)
	}
	return nil
}

func applyEnvOverrides(c *Config) error {
	if v := os.Getenv("GRIDSIM_MAX_ROWS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "GRIDSIM_MAX_ROWS")
		}
		c.Engine.MaxRows = n
	}
	if v := os.Getenv("GRIDSIM_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("GRIDSIM_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	return nil
}
