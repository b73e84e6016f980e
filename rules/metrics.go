package rules

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bedecarroll/example-network/metric"
)

// engineMetrics holds Prometheus metrics for rule engine operations.
// A nil *engineMetrics disables recording; every method is nil-safe.
type engineMetrics struct {
	sessions         prometheus.Counter   // Sessions created
	devicesApplied   prometheus.Counter   // Devices run through Apply
	issuesRecorded   prometheus.Counter   // Issues recorded by rules
	finalizeDuration prometheus.Histogram // Finalize latency in seconds
	finalizeIssues   prometheus.Histogram // Issues per finalize
}

// newEngineMetrics creates and registers rule engine metrics with the
// provided registry. A nil registry disables metrics.
func newEngineMetrics(registry *metric.Registry) (*engineMetrics, error) {
	if registry == nil {
		return nil, nil // Metrics disabled
	}

	m := &engineMetrics{
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "netgen",
			Subsystem: "rules",
			Name:      "sessions_total",
			Help:      "Total number of rule sessions created",
		}),
		devicesApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "netgen",
			Subsystem: "rules",
			Name:      "devices_applied_total",
			Help:      "Total number of devices run through rule sessions",
		}),
		issuesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "netgen",
			Subsystem: "rules",
			Name:      "issues_recorded_total",
			Help:      "Total number of issues recorded by rules",
		}),
		finalizeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "netgen",
			Subsystem: "rules",
			Name:      "finalize_duration_seconds",
			Help:      "Time spent running fleet rules at finalize",
			Buckets:   prometheus.DefBuckets,
		}),
		finalizeIssues: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "netgen",
			Subsystem: "rules",
			Name:      "finalize_issues",
			Help:      "Number of accumulated issues observed at finalize",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
	}

	registrations := map[string]prometheus.Collector{
		"sessions_total":            m.sessions,
		"devices_applied_total":     m.devicesApplied,
		"issues_recorded_total":     m.issuesRecorded,
		"finalize_duration_seconds": m.finalizeDuration,
		"finalize_issues":           m.finalizeIssues,
	}
	for name, collector := range registrations {
		if err := registry.Register("rules", name, collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *engineMetrics) recordSessionCreated() {
	if m == nil {
		return
	}
	m.sessions.Inc()
}

func (m *engineMetrics) recordDeviceApplied() {
	if m == nil {
		return
	}
	m.devicesApplied.Inc()
}

func (m *engineMetrics) recordIssue() {
	if m == nil {
		return
	}
	m.issuesRecorded.Inc()
}

func (m *engineMetrics) recordFinalize(seconds float64, issues int) {
	if m == nil {
		return
	}
	m.finalizeDuration.Observe(seconds)
	m.finalizeIssues.Observe(float64(issues))
}
