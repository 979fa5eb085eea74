// Package config provides configuration management for the phone standardizer.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"phonestd/internal/logger"
	"phonestd/internal/phone"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingCallingCode = errors.New("country.calling_code is required")
	ErrUnknownCallingCode = errors.New("country.calling_code is not an assigned calling code")
	ErrInvalidWorkers     = errors.New("processing.workers must be at least 1")
	ErrMissingOutputDir   = errors.New("output.dir is required")
	ErrInvalidIndent      = errors.New("output.indent may only contain spaces and tabs")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete standardizer configuration.
type Config struct {
	Country    CountryConfig    `yaml:"country"`
	Processing ProcessingConfig `yaml:"processing"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// CountryConfig selects the normalization rule.
type CountryConfig struct {
	CallingCode string `yaml:"calling_code"`
}

// ProcessingConfig controls how a batch is run.
type ProcessingConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig defines where and how artifacts are written.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	Indent      string `yaml:"indent"`
	PrettyPrint bool   `yaml:"pretty_print"`
	// WriteUnchanged writes artifacts even when nothing was corrected or
	// rejected.
	WriteUnchanged bool `yaml:"write_unchanged"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Country:    CountryConfig{CallingCode: phone.UAE.CallingCode()},
		Processing: ProcessingConfig{Workers: 1},
		Output: OutputConfig{
			Dir:         ".",
			Indent:      "  ",
			PrettyPrint: true,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from YAML file. Keys absent from the file
// keep their DefaultConfig values.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	code := strings.TrimPrefix(c.Country.CallingCode, "+")
	if code == "" {
		return ErrMissingCallingCode
	}

	if !phone.KnownCallingCode(code) {
		return fmt.Errorf("%w: %s", ErrUnknownCallingCode, c.Country.CallingCode)
	}

	if c.Processing.Workers < 1 {
		return ErrInvalidWorkers
	}

	if c.Output.Dir == "" {
		return ErrMissingOutputDir
	}

	if strings.Trim(c.Output.Indent, " \t") != "" {
		return ErrInvalidIndent
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil || c.Logging.Level == "" {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetCallingCode returns the selected calling code without a leading "+".
func (c *Config) GetCallingCode() string {
	return strings.TrimPrefix(c.Country.CallingCode, "+")
}

// GetIndent returns the JSON indent, or "" for compact output.
func (c *Config) GetIndent() string {
	if !c.Output.PrettyPrint {
		return ""
	}

	if c.Output.Indent == "" {
		return "  "
	}

	return c.Output.Indent
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Country: +%s, Workers: %d, Output: %s}",
		c.GetCallingCode(),
		c.Processing.Workers,
		c.Output.Dir,
	)
}
