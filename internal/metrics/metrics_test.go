package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := NewMetrics().(*metrics)

	m.IncrementRuns(OutcomeSuccess)
	m.IncrementRuns(OutcomeSuccess)
	m.IncrementRuns(OutcomeError)
	m.IncrementTranscripts("unintelligible")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.runsTotal.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runsTotal.WithLabelValues(OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transcriptsTotal.WithLabelValues("unintelligible")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetrics()
	m.ObserveStepDuration("extract_audio", 1.5)
	m.ObserveHTTPRequest("summarize", "POST", "200", 0.2)

	rec := httptest.NewRecorder()
	NewMetricsHandler(m).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "video_summarizer_pipeline_step_duration_seconds")
	assert.Contains(t, string(body), `step="extract_audio"`)
	assert.Contains(t, string(body), "video_summarizer_http_request_duration_seconds")
}

func TestNoopMetrics(t *testing.T) {
	m := NewNoopMetrics()
	m.IncrementRuns(OutcomeSuccess)
	m.ObserveStepDuration("summarize", 1)
	assert.NotNil(t, m.GetRegistry())
}
