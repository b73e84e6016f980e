// Package main implements the entry point for the netgen application.
// netgen ingests per-device JSON configuration fragments, resolves embedded
// placeholder tokens against lookup services, applies normalization rules,
// validates the resulting fleet for cross-device consistency, and writes
// normalized output.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/bedecarroll/example-network/config"
	"github.com/bedecarroll/example-network/lookup"
	"github.com/bedecarroll/example-network/metric"
	"github.com/bedecarroll/example-network/processor"
	"github.com/bedecarroll/example-network/rules"
	"github.com/bedecarroll/example-network/rulesregistry"
	"github.com/bedecarroll/example-network/token"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "netgen"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()

	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}
	if cliCfg.ShowVersion {
		fmt.Printf("%s %s (build %s)\n", appName, Version, BuildTime)
		return nil
	}

	cfg, err := buildConfig(cliCfg)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	if cliCfg.Validate {
		logger.Info("Configuration is valid")
		return nil
	}

	metricsRegistry := metric.NewRegistry()
	if cfg.MetricsPort > 0 {
		startMetricsServer(cfg.MetricsPort, metricsRegistry, logger)
	}

	ipam, assets, err := buildLookups(cfg)
	if err != nil {
		return err
	}
	resolver := token.NewResolver(ipam, assets, logger)

	set := rules.NewRuleSet()
	if !cliCfg.NoBuiltinRules {
		if err := rulesregistry.Register(set); err != nil {
			return err
		}
	}
	engine, err := rules.NewEngine(set, logger, metricsRegistry)
	if err != nil {
		return err
	}

	proc, err := processor.New(cfg, processor.Dependencies{
		Resolver: resolver,
		Engine:   engine,
		Logger:   logger,
		Metrics:  metricsRegistry,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := proc.Run(ctx); err != nil {
		logger.Error("Processing failed", "error", err)
		return err
	}
	return nil
}

// buildConfig layers defaults, the optional config file, environment
// overrides, and finally explicit CLI flags
func buildConfig(cliCfg *CLIConfig) (*config.Config, error) {
	cfg := config.Default()
	if cliCfg.ConfigPath != "" {
		loaded, err := config.Load(cliCfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if cliCfg.SourceDir != "" {
		cfg.SourceDir = cliCfg.SourceDir
	}
	if cliCfg.OutputDir != "" {
		cfg.OutputDir = cliCfg.OutputDir
	}
	if cliCfg.SchemaReference != "" {
		cfg.SchemaReference = cliCfg.SchemaReference
	}
	if cliCfg.IPAMFile != "" {
		cfg.IPAMFile = cliCfg.IPAMFile
	}
	if cliCfg.AssetFile != "" {
		cfg.AssetFile = cliCfg.AssetFile
	}
	if cliCfg.LogLevel != "" {
		cfg.Log.Level = cliCfg.LogLevel
	}
	if cliCfg.LogFormat != "" {
		cfg.Log.Format = cliCfg.LogFormat
	}
	if cliCfg.MetricsPort != 0 {
		cfg.MetricsPort = cliCfg.MetricsPort
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildLookups constructs the lookup services, preferring operator-supplied
// YAML datasets over the demonstration data
func buildLookups(cfg *config.Config) (lookup.InterfaceLookup, lookup.AssetLookup, error) {
	var ipam lookup.InterfaceLookup = lookup.DemoIPAM()
	if cfg.IPAMFile != "" {
		loaded, err := lookup.LoadIPAMFile(cfg.IPAMFile)
		if err != nil {
			return nil, nil, err
		}
		ipam = loaded
	}

	var assets lookup.AssetLookup = lookup.DemoAssetInventory()
	if cfg.AssetFile != "" {
		loaded, err := lookup.LoadAssetFile(cfg.AssetFile)
		if err != nil {
			return nil, nil, err
		}
		assets = loaded
	}

	return ipam, assets, nil
}

// startMetricsServer serves the Prometheus exposition endpoint in the
// background for the lifetime of the process
func startMetricsServer(port int, registry *metric.Registry, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", registry.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Metrics server listening", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Metrics server failed", "error", err)
		}
	}()
}
