// Package metrics instruments the demos with Prometheus counters.
// Counters live on a private registry per demo run; there is no exposition
// endpoint, the counts are rendered as a plain-text summary in verbose mode.
package metrics

import (
	"fmt"
	"io"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// StepMetrics counts skeleton-runner step executions by model and step name.
type StepMetrics struct {
	registry *prometheus.Registry
	steps    *prometheus.CounterVec
}

// NewStepMetrics creates a StepMetrics with its own registry.
func NewStepMetrics() *StepMetrics {
	m := &StepMetrics{
		registry: prometheus.NewRegistry(),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_steps_total",
			Help: "Number of skeleton step executions, by model and step.",
		}, []string{"model", "step"}),
	}
	m.registry.MustRegister(m.steps)
	return m
}

// ObserveStep records one execution of the named step for the given model.
func (m *StepMetrics) ObserveStep(model, step string) {
	m.steps.WithLabelValues(model, step).Inc()
}

// WriteSummary renders the collected counters as human-readable lines.
func (m *StepMetrics) WriteSummary(w io.Writer) error {
	return writeSummary(w, m.registry)
}

// ExportMetrics counts exporter product calls by category and operation.
type ExportMetrics struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
}

// NewExportMetrics creates an ExportMetrics with its own registry.
func NewExportMetrics() *ExportMetrics {
	m := &ExportMetrics{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "exporter_calls_total",
			Help: "Number of exporter product calls, by category and operation.",
		}, []string{"category", "operation"}),
	}
	m.registry.MustRegister(m.calls)
	return m
}

// ObserveCall records one product call for the given category and operation.
func (m *ExportMetrics) ObserveCall(category, operation string) {
	m.calls.WithLabelValues(category, operation).Inc()
}

// WriteSummary renders the collected counters as human-readable lines.
func (m *ExportMetrics) WriteSummary(w io.Writer) error {
	return writeSummary(w, m.registry)
}

// writeSummary gathers a registry and prints one "name{labels} count" line per
// series, sorted for stable output.
func writeSummary(w io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			lines = append(lines, formatSeries(family, metric))
		}
	}
	sort.Strings(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// formatSeries renders a single metric series as "name{k=v,...} n".
func formatSeries(family *dto.MetricFamily, metric *dto.Metric) string {
	labels := ""
	for i, pair := range metric.GetLabel() {
		if i > 0 {
			labels += ","
		}
		labels += fmt.Sprintf("%s=%q", pair.GetName(), pair.GetValue())
	}
	return fmt.Sprintf("%s{%s} %.0f", family.GetName(), labels, metric.GetCounter().GetValue())
}
