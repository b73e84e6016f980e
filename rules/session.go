package rules

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bedecarroll/example-network/errors"
)

// Session orchestrates the two-phase rule protocol across many devices.
// A session is Open until Finalize is called, after which it is terminal.
// Sessions are not safe for concurrent use.
type Session struct {
	id      string
	set     *RuleSet
	logger  *slog.Logger
	metrics *engineMetrics

	records   []DeviceRecord
	issues    []string
	finalized bool
}

// ID returns the session's unique identifier
func (s *Session) ID() string {
	return s.id
}

// Apply runs every device rule against one device and snapshots the result.
// The device's display path defaults to its source path.
func (s *Session) Apply(device map[string]any, site, sourcePath string) error {
	return s.ApplyDisplay(device, site, sourcePath, sourcePath)
}

// ApplyDisplay is Apply with an explicit human-readable display path used
// in diagnostics instead of the filesystem source path.
func (s *Session) ApplyDisplay(device map[string]any, site, sourcePath, displayPath string) error {
	if s.finalized {
		return errors.WrapInvalid(errors.ErrSessionFinalized, "Session", "Apply",
			"apply after finalize")
	}

	// Zero-allocation fast path for the common no-rules case: no context,
	// no record.
	if s.set.Empty() {
		return nil
	}

	context := &Context{
		Device:     device,
		Site:       site,
		SourcePath: sourcePath,
		session:    s,
	}
	for _, rule := range s.set.rules {
		rule.Apply(context)
	}

	if displayPath == "" {
		displayPath = sourcePath
	}
	s.records = append(s.records, DeviceRecord{
		Device:      device,
		Site:        site,
		SourcePath:  sourcePath,
		DisplayPath: displayPath,
	})

	s.metrics.recordDeviceApplied()
	s.logger.Debug("Applied device rules",
		"session_id", s.id,
		"site", site,
		"source_path", sourcePath,
		"devices_applied", len(s.records))

	return nil
}

// Finalize runs every fleet rule over the accumulated device records and
// surfaces all recorded issues as a single aggregate failure. It is the
// only point at which fleet rules run. A second call fails with a
// protocol-misuse error.
func (s *Session) Finalize() error {
	if s.finalized {
		return errors.WrapInvalid(errors.ErrSessionFinalized, "Session", "Finalize",
			"finalize called twice")
	}
	s.finalized = true

	if len(s.set.fleet) == 0 && len(s.issues) == 0 {
		return nil
	}

	start := time.Now()

	if len(s.set.fleet) > 0 {
		context := &FleetContext{
			records: s.records,
			session: s,
		}
		for _, rule := range s.set.fleet {
			rule.Review(context)
		}
	}

	s.metrics.recordFinalize(time.Since(start).Seconds(), len(s.issues))

	if len(s.issues) > 0 {
		s.logger.Debug("Session finalized with violations",
			"session_id", s.id,
			"devices", len(s.records),
			"issues", len(s.issues))
		return &ViolationError{Issues: s.issues}
	}

	s.logger.Debug("Session finalized cleanly",
		"session_id", s.id,
		"devices", len(s.records))
	return nil
}

// recordIssue appends one diagnostic message. Issues are append-only and
// ordered by emission.
func (s *Session) recordIssue(message string) {
	s.issues = append(s.issues, message)
	s.metrics.recordIssue()
}

// ViolationError aggregates every issue recorded during a session. It is
// raised once, at finalize time, after all devices and fleet rules have
// been evaluated.
type ViolationError struct {
	Issues []string
}

// Error joins the recorded issues with a blank-line separator for display
func (e *ViolationError) Error() string {
	return strings.Join(e.Issues, "\n\n")
}

// Is reports that a ViolationError matches the ErrRuleViolation sentinel
func (e *ViolationError) Is(target error) bool {
	return target == errors.ErrRuleViolation
}

// String returns a one-line summary suitable for logging
func (e *ViolationError) String() string {
	return fmt.Sprintf("%d rule violation(s) detected", len(e.Issues))
}
