package rules

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bedecarroll/example-network/errors"
	"github.com/bedecarroll/example-network/metric"
)

// Loader produces a RuleSet from an external rule source. A nil Loader
// means no rule source is configured, which is a valid default rather than
// an error.
type Loader func() (*RuleSet, error)

// Engine holds a validated, immutable rule set and creates Sessions.
// The engine is stateless after construction and may create unlimited
// independent sessions.
type Engine struct {
	set     *RuleSet
	logger  *slog.Logger
	metrics *engineMetrics
}

// NewEngine creates an engine over an explicitly supplied rule set. Every
// entry must be invocable; a nil entry fails construction with a
// registration error naming its position. A nil set is a valid empty set.
func NewEngine(set *RuleSet, logger *slog.Logger, metricsRegistry *metric.Registry) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if set == nil {
		set = NewRuleSet()
	}

	if err := validateRuleSet(set); err != nil {
		return nil, err
	}

	metrics, err := newEngineMetrics(metricsRegistry)
	if err != nil {
		logger.Error("Failed to initialize rule engine metrics", "error", err)
		metrics = nil // Continue without metrics
	}

	logger.Debug("Rule engine constructed",
		"device_rules", set.Len(),
		"fleet_rules", set.FleetLen())

	return &Engine{
		set:     set,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// NewEngineFromLoader creates an engine from an external rule source. A nil
// loader yields an engine with an empty rule set; rules are an optional
// extension point. A loader failure is fatal and aborts construction.
func NewEngineFromLoader(loader Loader, logger *slog.Logger, metricsRegistry *metric.Registry) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if loader == nil {
		logger.Debug("No rule source configured; proceeding without rules")
		return NewEngine(NewRuleSet(), logger, metricsRegistry)
	}

	set, err := loader()
	if err != nil {
		err = fmt.Errorf("%w: %w", errors.ErrRuleSourceLoad, err)
		return nil, errors.WrapFatal(err, "Engine", "NewEngineFromLoader", "rule source load")
	}
	if set == nil {
		set = NewRuleSet()
	}

	logger.Debug("Loaded rules from rule source",
		"device_rules", set.Len(),
		"fleet_rules", set.FleetLen())

	return NewEngine(set, logger, metricsRegistry)
}

// NewSession creates a fresh session bound to this engine's rule set
func (e *Engine) NewSession() *Session {
	session := &Session{
		id:      uuid.NewString(),
		set:     e.set,
		logger:  e.logger,
		metrics: e.metrics,
	}
	e.metrics.recordSessionCreated()
	return session
}

// Apply runs the full protocol for a single device: a one-shot session is
// created, the device is applied, and the session finalizes immediately.
// Equivalent to, but not a replacement for, the multi-device protocol.
func (e *Engine) Apply(device map[string]any, site, sourcePath string) error {
	session := e.NewSession()
	if err := session.Apply(device, site, sourcePath); err != nil {
		return err
	}
	return session.Finalize()
}

func validateRuleSet(set *RuleSet) error {
	for i, rule := range set.rules {
		if rule == nil {
			err := fmt.Errorf("%w: device rule at position %d is not invocable",
				errors.ErrRegistration, i)
			return errors.WrapInvalid(err, "Engine", "NewEngine", "rule validation")
		}
	}
	for i, rule := range set.fleet {
		if rule == nil {
			err := fmt.Errorf("%w: fleet rule at position %d is not invocable",
				errors.ErrRegistration, i)
			return errors.WrapInvalid(err, "Engine", "NewEngine", "fleet rule validation")
		}
	}
	return nil
}
