// Package config holds the processor configuration: where source data
// lives, where normalized output goes, and which lookup datasets back token
// resolution. Configuration layers, lowest priority first: built-in
// defaults, an optional JSON config file, NETGEN_* environment variables.
// CLI flags sit above all three and are applied by the caller.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bedecarroll/example-network/errors"
)

// DefaultSchemaReference is the $schema value stamped into generated files
const DefaultSchemaReference = "../../data/schema.json"

// Config represents the complete processor configuration
type Config struct {
	SourceDir       string    `json:"source_dir"`           // Directory containing authoring data files
	OutputDir       string    `json:"output_dir"`           // Directory for processed data files
	SchemaReference string    `json:"schema_reference"`     // Value assigned to $schema in generated files
	IPAMFile        string    `json:"ipam_file,omitempty"`  // Optional YAML allocations; demo data when empty
	AssetFile       string    `json:"asset_file,omitempty"` // Optional YAML assets; demo data when empty
	Log             LogConfig `json:"log"`
	MetricsPort     int       `json:"metrics_port"` // Prometheus exposition port, 0 disables
}

// LogConfig controls slog handler construction
type LogConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
}

// Default returns the built-in configuration defaults
func Default() *Config {
	return &Config{
		SourceDir:       "data",
		OutputDir:       "generated/data",
		SchemaReference: DefaultSchemaReference,
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads a JSON config file over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Config", "Load", "config file read")
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapInvalid(err, "Config", "Load", "config file parse")
	}

	return cfg, nil
}

// ApplyEnv overrides configuration fields from NETGEN_* environment variables
func (c *Config) ApplyEnv() {
	overrides := map[string]*string{
		"NETGEN_SOURCE":           &c.SourceDir,
		"NETGEN_OUTPUT":           &c.OutputDir,
		"NETGEN_SCHEMA_REFERENCE": &c.SchemaReference,
		"NETGEN_IPAM_FILE":        &c.IPAMFile,
		"NETGEN_ASSET_FILE":       &c.AssetFile,
		"NETGEN_LOG_LEVEL":        &c.Log.Level,
		"NETGEN_LOG_FORMAT":       &c.Log.Format,
	}
	for key, target := range overrides {
		if value := os.Getenv(key); value != "" {
			*target = value
		}
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate",
			"source_dir is required")
	}
	if c.OutputDir == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate",
			"output_dir is required")
	}
	if c.SchemaReference == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate",
			"schema_reference is required")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		return errors.WrapInvalid(
			fmt.Errorf("%w: invalid log level %q", errors.ErrInvalidConfig, c.Log.Level),
			"Config", "Validate", "log level validation")
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Log.Format] {
		return errors.WrapInvalid(
			fmt.Errorf("%w: invalid log format %q", errors.ErrInvalidConfig, c.Log.Format),
			"Config", "Validate", "log format validation")
	}

	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: invalid metrics port %d", errors.ErrInvalidConfig, c.MetricsPort),
			"Config", "Validate", "metrics port validation")
	}

	return nil
}
