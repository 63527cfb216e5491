package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	MetricsNamespace           = "video_summarizer"
	MetricsSubsystemPipeline   = "pipeline"
	MetricsSubsystemHTTP       = "http"
	MetricsSubsystemTranscript = "transcript"

	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

type Metrics interface {
	GetRegistry() *prometheus.Registry

	ObserveStepDuration(step string, elapsed float64)
	IncrementRuns(outcome string)
	IncrementTranscripts(kind string)
	ObserveHTTPRequest(handler, method, statusCode string, elapsed float64)
}

type metrics struct {
	registry *prometheus.Registry

	stepTime         *prometheus.HistogramVec
	runsTotal        *prometheus.CounterVec
	transcriptsTotal *prometheus.CounterVec
	httpTime         *prometheus.HistogramVec
}

// NewMetrics registers the pipeline collectors on a fresh registry.
func NewMetrics() Metrics {
	m := &metrics{registry: prometheus.NewRegistry()}

	m.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: MetricsNamespace}))
	m.registry.MustRegister(collectors.NewGoCollector())

	m.stepTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemPipeline,
		Name:      "step_duration_seconds",
		Help:      "Time spent in each pipeline step.",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"step"})
	m.registry.MustRegister(m.stepTime)

	m.runsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemPipeline,
		Name:      "runs_total",
		Help:      "The total number of pipeline runs by outcome.",
	}, []string{"outcome"})
	m.registry.MustRegister(m.runsTotal)

	m.transcriptsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemTranscript,
		Name:      "total",
		Help:      "The total number of transcripts by kind.",
	}, []string{"kind"})
	m.registry.MustRegister(m.transcriptsTotal)

	m.httpTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystemHTTP,
		Name:      "request_duration_seconds",
		Help:      "Time to execute the http handler.",
	}, []string{"handler", "method", "status_code"})
	m.registry.MustRegister(m.httpTime)

	return m
}

func (m *metrics) GetRegistry() *prometheus.Registry {
	return m.registry
}

func (m *metrics) ObserveStepDuration(step string, elapsed float64) {
	m.stepTime.With(prometheus.Labels{"step": step}).Observe(elapsed)
}

func (m *metrics) IncrementRuns(outcome string) {
	m.runsTotal.With(prometheus.Labels{"outcome": outcome}).Inc()
}

func (m *metrics) IncrementTranscripts(kind string) {
	m.transcriptsTotal.With(prometheus.Labels{"kind": kind}).Inc()
}

func (m *metrics) ObserveHTTPRequest(handler, method, statusCode string, elapsed float64) {
	m.httpTime.With(prometheus.Labels{"handler": handler, "method": method, "status_code": statusCode}).Observe(elapsed)
}

// NewMetricsHandler creates an HTTP handler to expose metrics.
func NewMetricsHandler(m Metrics) http.Handler {
	return promhttp.HandlerFor(m.GetRegistry(), promhttp.HandlerOpts{})
}
