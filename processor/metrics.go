package processor

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bedecarroll/example-network/metric"
)

// processorMetrics holds Prometheus metrics for processing runs.
// A nil *processorMetrics disables recording; every method is nil-safe.
type processorMetrics struct {
	filesProcessed     prometheus.Counter
	resolutionFailures prometheus.Counter
	runs               *prometheus.CounterVec // By status (success/failure)
	runDuration        prometheus.Histogram
}

// newProcessorMetrics creates and registers processor metrics with the
// provided registry. A nil registry disables metrics.
func newProcessorMetrics(registry *metric.Registry) (*processorMetrics, error) {
	if registry == nil {
		return nil, nil // Metrics disabled
	}

	m := &processorMetrics{
		filesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "netgen",
			Subsystem: "processor",
			Name:      "files_processed_total",
			Help:      "Total number of source files processed",
		}),
		resolutionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "netgen",
			Subsystem: "processor",
			Name:      "resolution_failures_total",
			Help:      "Total number of token resolution failures",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "netgen",
			Subsystem: "processor",
			Name:      "runs_total",
			Help:      "Total number of processing runs",
		}, []string{"status"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "netgen",
			Subsystem: "processor",
			Name:      "run_duration_seconds",
			Help:      "Duration of processing runs",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	registrations := map[string]prometheus.Collector{
		"files_processed_total":     m.filesProcessed,
		"resolution_failures_total": m.resolutionFailures,
		"runs_total":                m.runs,
		"run_duration_seconds":      m.runDuration,
	}
	for name, collector := range registrations {
		if err := registry.Register("processor", name, collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *processorMetrics) recordFileProcessed() {
	if m == nil {
		return
	}
	m.filesProcessed.Inc()
}

func (m *processorMetrics) recordResolutionFailure() {
	if m == nil {
		return
	}
	m.resolutionFailures.Inc()
}

func (m *processorMetrics) recordRun(seconds float64, success bool) {
	if m == nil {
		return
	}
	status := "failure"
	if success {
		status = "success"
	}
	m.runs.WithLabelValues(status).Inc()
	m.runDuration.Observe(seconds)
}
