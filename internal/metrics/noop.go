package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// NoopMetrics discards every observation.
type NoopMetrics struct{}

func NewNoopMetrics() Metrics {
	return &NoopMetrics{}
}

// GetRegistry returns a new empty registry.
func (m *NoopMetrics) GetRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func (m *NoopMetrics) ObserveStepDuration(step string, elapsed float64) {}

func (m *NoopMetrics) IncrementRuns(outcome string) {}

func (m *NoopMetrics) IncrementTranscripts(kind string) {}

func (m *NoopMetrics) ObserveHTTPRequest(handler, method, statusCode string, elapsed float64) {}
