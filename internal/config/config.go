package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formats lists the supported output formats in canonical order.
var Formats = []string{"csv", "xlsx", "parquet"}

// Config holds all runtime configuration for a contactload run.
type Config struct {
	DSN        string
	InputPath  string
	OutputPath string
	Format     string // "csv", "xlsx", or "parquet"; empty means infer from OutputPath
	LogFormat  string // "text" or "json"

	// Abbreviations extends the built-in street-type abbreviation table.
	// Keys are single tokens matched case-insensitively.
	Abbreviations map[string]string `yaml:"abbreviations"`
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	LogFormat     string            `yaml:"log_format"`
	Abbreviations map[string]string `yaml:"abbreviations"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Flag values already set take precedence over file values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if c.LogFormat == "" {
		c.LogFormat = yc.LogFormat
	}
	c.Abbreviations = yc.Abbreviations
	return c.validateAbbreviations()
}

// validateAbbreviations checks that every extra abbreviation is a single
// token with a non-empty expansion.
func (c *Config) validateAbbreviations() error {
	for k, v := range c.Abbreviations {
		if k == "" || strings.ContainsAny(k, " \t") {
			return fmt.Errorf("abbreviation key %q must be a single token", k)
		}
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("abbreviation %q has an empty expansion", k)
		}
	}
	return nil
}

// ResolveFormat returns the effective output format: the explicit Format if
// set, otherwise the OutputPath extension.
func (c *Config) ResolveFormat() (string, error) {
	f := c.Format
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(c.OutputPath)), ".")
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format %q (want one of: %s)",
		f, strings.Join(Formats, ", "))
}

// Validate checks that the input file is set and accessible.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input file is required")
	}
	if _, err := os.Stat(c.InputPath); err != nil {
		return fmt.Errorf("input file not accessible: %w", err)
	}
	return nil
}

// ValidateOutput checks the input plus the output path and format.
func (c *Config) ValidateOutput() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if _, err := c.ResolveFormat(); err != nil {
		return err
	}
	return nil
}

// ValidateWithDSN checks the input plus the database connection string.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or CONTACTS_DB_URL is required")
	}
	return nil
}
