// Package processor drives the per-file normalization pipeline: it
// discovers per-device JSON source files laid out as <source>/<site>/*.json,
// resolves placeholder tokens in the fields that carry them, runs each
// device through a rule session, and writes normalized output mirroring the
// source layout once the whole fleet has validated.
package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bedecarroll/example-network/config"
	"github.com/bedecarroll/example-network/errors"
	"github.com/bedecarroll/example-network/metric"
	"github.com/bedecarroll/example-network/rules"
	"github.com/bedecarroll/example-network/token"
)

// unknownHostname stands in for devices without a hostname field in
// resolution error messages
const unknownHostname = "<unknown>"

// Dependencies holds the collaborators a Processor needs
type Dependencies struct {
	Resolver *token.Resolver
	Engine   *rules.Engine
	Logger   *slog.Logger
	Metrics  *metric.Registry
}

// Processor coordinates data ingestion, token resolution, rule execution,
// and output generation
type Processor struct {
	sourceDir       string
	outputDir       string
	schemaReference string
	resolver        *token.Resolver
	engine          *rules.Engine
	logger          *slog.Logger
	metrics         *processorMetrics
}

// sourceFile is one discovered device file
type sourceFile struct {
	path string
	site string
	name string
}

// output is one normalized device awaiting write-out
type output struct {
	site   string
	name   string
	device map[string]any
}

// New creates a processor from configuration and dependencies
func New(cfg *config.Config, deps Dependencies) (*Processor, error) {
	if cfg == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "Processor", "New",
			"configuration validation")
	}
	if deps.Resolver == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "Processor", "New",
			"token resolver validation")
	}
	if deps.Engine == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "Processor", "New",
			"rule engine validation")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics, err := newProcessorMetrics(deps.Metrics)
	if err != nil {
		logger.Error("Failed to initialize processor metrics", "error", err)
		metrics = nil // Continue without metrics
	}

	return &Processor{
		sourceDir:       cfg.SourceDir,
		outputDir:       cfg.OutputDir,
		schemaReference: cfg.SchemaReference,
		resolver:        deps.Resolver,
		engine:          deps.Engine,
		logger:          logger,
		metrics:         metrics,
	}, nil
}

// Run normalizes every discovered JSON source file. Token resolution
// failures abort the run immediately; rule violations are collected across
// the whole fleet and surface as one aggregate error after every device has
// been evaluated. Output is only written on a fully clean run.
func (p *Processor) Run(ctx context.Context) error {
	start := time.Now()
	success := false
	defer func() {
		p.metrics.recordRun(time.Since(start).Seconds(), success)
	}()

	files, err := p.discoverSourceFiles()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		p.logger.Warn("No JSON files discovered", "source_dir", p.sourceDir)
		success = true
		return nil
	}

	session := p.engine.NewSession()
	outputs := make([]output, 0, len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "Processor", "Run", "context check")
		}

		device, err := p.processFile(file, session)
		if err != nil {
			return err
		}
		outputs = append(outputs, output{site: file.site, name: file.name, device: device})
	}

	if err := session.Finalize(); err != nil {
		return errors.WrapInvalid(err, "Processor", "Run", "fleet validation")
	}

	for _, out := range outputs {
		if err := p.writeOutput(out); err != nil {
			return err
		}
	}

	p.logger.Info("Processed data files",
		"count", len(files),
		"output_dir", p.outputDir)
	success = true
	return nil
}

// discoverSourceFiles walks <source>/<site>/*.json in sorted order,
// skipping the schema directory
func (p *Processor) discoverSourceFiles() ([]sourceFile, error) {
	entries, err := os.ReadDir(p.sourceDir)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Processor", "Run", "source directory read")
	}

	var files []sourceFile
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == "schema" {
			continue
		}
		site := entry.Name()

		matches, err := filepath.Glob(filepath.Join(p.sourceDir, site, "*.json"))
		if err != nil {
			return nil, errors.WrapInvalid(err, "Processor", "Run", "source file glob")
		}
		sort.Strings(matches)

		for _, path := range matches {
			files = append(files, sourceFile{
				path: path,
				site: site,
				name: filepath.Base(path),
			})
		}
	}

	return files, nil
}

// processFile decodes one device file, resolves its tokens, and applies the
// rule session
func (p *Processor) processFile(file sourceFile, session *rules.Session) (map[string]any, error) {
	raw, err := os.ReadFile(file.path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Processor", "Run",
			fmt.Sprintf("read %s", file.path))
	}

	var device map[string]any
	if err := json.Unmarshal(raw, &device); err != nil {
		return nil, errors.WrapInvalid(err, "Processor", "Run",
			fmt.Sprintf("parse %s", file.path))
	}

	if err := p.resolveDeviceTokens(device, file.site); err != nil {
		p.metrics.recordResolutionFailure()
		return nil, err
	}

	displayPath := filepath.Join(file.site, file.name)
	if err := session.ApplyDisplay(device, file.site, file.path, displayPath); err != nil {
		return nil, err
	}

	device["$schema"] = p.schemaReference
	p.metrics.recordFileProcessed()
	p.logger.Debug("Processed source file", "path", file.path, "site", file.site)
	return device, nil
}

// resolveDeviceTokens resolves the two fields known to carry tokens: each
// interface's ipv4 value and the device serial number
func (p *Processor) resolveDeviceTokens(device map[string]any, site string) error {
	hostname, ok := device["hostname"].(string)
	if !ok || hostname == "" {
		hostname = unknownHostname
	}

	if interfaces, ok := device["interfaces"].(map[string]any); ok {
		// Sorted so a run with several bad tokens always fails on the
		// same one.
		names := make([]string, 0, len(interfaces))
		for name := range interfaces {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			details, ok := interfaces[name].(map[string]any)
			if !ok {
				continue
			}
			value, ok := details["ipv4"].(string)
			if !ok {
				continue
			}
			resolved, err := p.resolver.Resolve(value, site, hostname, name)
			if err != nil {
				return err
			}
			details["ipv4"] = resolved
		}
	}

	if serial, ok := device["serial_number"].(string); ok {
		resolved, err := p.resolver.Resolve(serial, site, hostname, "")
		if err != nil {
			return err
		}
		device["serial_number"] = resolved
	}

	return nil
}

// writeOutput writes one normalized device file, mirroring the site layout
func (p *Processor) writeOutput(out output) error {
	targetDir := filepath.Join(p.outputDir, out.site)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return errors.WrapInvalid(err, "Processor", "Run", "output directory create")
	}

	// encoding/json emits map keys in sorted order, keeping generated
	// files diffable across runs.
	data, err := json.MarshalIndent(out.device, "", "  ")
	if err != nil {
		return errors.WrapInvalid(err, "Processor", "Run",
			fmt.Sprintf("marshal %s/%s", out.site, out.name))
	}

	target := filepath.Join(targetDir, out.name)
	if err := os.WriteFile(target, append(data, '\n'), 0o644); err != nil {
		return errors.WrapInvalid(err, "Processor", "Run",
			fmt.Sprintf("write %s", target))
	}

	p.logger.Debug("Wrote output file", "path", target)
	return nil
}
