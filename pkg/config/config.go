package config

import (
	"github.com/fastrenamer/fastrenamer/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DefaultsConfig holds default transformation parameters applied when the
// matching command-line flag is not given
type DefaultsConfig struct {
	Start     int             `yaml:"start"`
	Padding   int             `yaml:"padding"`
	Template  string          `yaml:"template"`
	Separator string          `yaml:"separator"`
	Position  models.Position `yaml:"position"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show progress bars
	Color    bool   `yaml:"color"`    // Colorize human output
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // Log file path (empty = disabled)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Start:     1,
			Padding:   0,
			Template:  "{n}",
			Separator: "_",
			Position:  models.PositionPrefix,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Color:    true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Format:  "json",
			Level:   "info",
			File:    "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Defaults.Start < 0 {
		return &models.ValidationError{
			Field:   "defaults.start",
			Message: "must not be negative",
		}
	}

	if c.Defaults.Padding < 0 {
		return &models.ValidationError{
			Field:   "defaults.padding",
			Message: "must not be negative",
		}
	}

	if c.Defaults.Position != models.PositionPrefix && c.Defaults.Position != models.PositionSuffix {
		return &models.ValidationError{
			Field:   "defaults.position",
			Message: "must be 'prefix' or 'suffix'",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
