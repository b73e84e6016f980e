package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath      string
	SourceDir       string
	OutputDir       string
	SchemaReference string
	IPAMFile        string
	AssetFile       string
	LogLevel        string
	LogFormat       string
	MetricsPort     int
	NoBuiltinRules  bool
	ShowVersion     bool
	ShowHelp        bool
	Validate        bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("NETGEN_CONFIG", ""),
		"Path to JSON configuration file (env: NETGEN_CONFIG)")

	flag.StringVar(&cfg.SourceDir, "source",
		getEnv("NETGEN_SOURCE", ""),
		"Directory containing authoring data files (env: NETGEN_SOURCE)")

	flag.StringVar(&cfg.OutputDir, "output",
		getEnv("NETGEN_OUTPUT", ""),
		"Directory for processed data files (env: NETGEN_OUTPUT)")

	flag.StringVar(&cfg.SchemaReference, "schema-reference",
		getEnv("NETGEN_SCHEMA_REFERENCE", ""),
		"Value to assign to the $schema property in generated files (env: NETGEN_SCHEMA_REFERENCE)")

	flag.StringVar(&cfg.IPAMFile, "ipam-file",
		getEnv("NETGEN_IPAM_FILE", ""),
		"YAML file of IPAM allocations; demo data when unset (env: NETGEN_IPAM_FILE)")

	flag.StringVar(&cfg.AssetFile, "asset-file",
		getEnv("NETGEN_ASSET_FILE", ""),
		"YAML file of asset records; demo data when unset (env: NETGEN_ASSET_FILE)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("NETGEN_LOG_LEVEL", ""),
		"Log level: debug, info, warn, error (env: NETGEN_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("NETGEN_LOG_FORMAT", ""),
		"Log format: json, text (env: NETGEN_LOG_FORMAT)")

	flag.IntVar(&cfg.MetricsPort, "metrics-port",
		getEnvInt("NETGEN_METRICS_PORT", 0),
		"Prometheus metrics port, 0 to disable (env: NETGEN_METRICS_PORT)")

	flag.BoolVar(&cfg.NoBuiltinRules, "no-builtin-rules", false,
		"Skip registration of the built-in normalization rules")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")
	flag.BoolVar(&cfg.Validate, "validate", false, "Validate configuration and exit")

	flag.Usage = func() {
		printDetailedHelp()
	}

	flag.Parse()

	return cfg
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - Network Device Data Normalizer

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Normalize the demo dataset
  %s --source=data --output=generated/data

  # Run with a config file and custom lookup data
  %s --config=/etc/netgen/config.json --ipam-file=/etc/netgen/ipam.yaml

  # Validate configuration only
  %s --config=/etc/netgen/config.json --validate

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
