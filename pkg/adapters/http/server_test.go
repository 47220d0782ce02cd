package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adapter "github.com/aretw0/appguide/pkg/adapters/http"
	"github.com/aretw0/appguide/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProject struct{}

func (fakeProject) Summarize() []domain.ProgressSummary {
	return []domain.ProgressSummary{
		{Index: 1, Title: "Phase 1: Concept & Strategy", GuideHeading: "Concept", HasProgress: true},
		{Index: 2, Title: "Phase 2: Development Planning", GuideHeading: "Planning"},
		{Index: 3, Title: "Phase 3: AI Execution", GuideHeading: "(guide not found)"},
		{Index: 4, Title: "Phase 4: Testing & Iteration", GuideHeading: "Testing"},
		{Index: 5, Title: "Phase 5: Launch & Growth", GuideHeading: "Launch"},
	}
}

func (fakeProject) Preview(index, maxLines int) (string, error) {
	if index < 1 || index > 5 {
		return "", domain.ErrPhaseNotFound
	}
	return "# Guide", nil
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestHandler_Phases(t *testing.T) {
	h := adapter.NewHandler(fakeProject{})

	w := get(t, h, "/phases")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp adapter.ProgressResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Phases, 5)
	assert.Equal(t, 2, resp.ResumeIndex)
	assert.InDelta(t, 20.0, resp.Percent, 0.001)
}

func TestHandler_Phase(t *testing.T) {
	h := adapter.NewHandler(fakeProject{})

	w := get(t, h, "/phases/1")
	require.Equal(t, http.StatusOK, w.Code)
	var resp adapter.PhaseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Phase 1: Concept & Strategy", resp.Title)
	assert.True(t, resp.HasProgress)
	assert.Equal(t, "# Guide", resp.Preview)

	assert.Equal(t, http.StatusNotFound, get(t, h, "/phases/9").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/phases/abc").Code)
}

func TestHandler_HealthAndCORS(t *testing.T) {
	h := adapter.NewHandler(fakeProject{})

	w := get(t, h, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	opt := httptest.NewRecorder()
	h.ServeHTTP(opt, httptest.NewRequest("OPTIONS", "/phases", nil))
	assert.Equal(t, http.StatusOK, opt.Code)
}

func TestHandler_Metrics(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, get(t, adapter.NewHandler(fakeProject{}), "/metrics").Code)

	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "appguide_test_total", Help: "test"})
	reg.MustRegister(c)
	c.Inc()

	w := get(t, adapter.NewHandler(fakeProject{}, adapter.WithGatherer(reg)), "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "appguide_test_total 1")
}

func TestHandler_RequestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := adapter.NewHandler(fakeProject{}, adapter.WithRegisterer(reg), adapter.WithGatherer(reg))

	get(t, h, "/phases")
	get(t, h, "/phases/1")
	get(t, h, "/phases/2")
	get(t, h, "/phases/abc")

	w := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `appguide_http_requests_total{code="200",route="/phases"} 1`)
	assert.Contains(t, body, `appguide_http_requests_total{code="200",route="/phases/{index}"} 2`)
	assert.Contains(t, body, `appguide_http_requests_total{code="400",route="/phases/{index}"} 1`)
	assert.Contains(t, body, "appguide_phases_with_progress 1")
}

func TestHandler_SharedRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := adapter.NewHandler(fakeProject{}, adapter.WithRegisterer(reg))
	second := adapter.NewHandler(fakeProject{}, adapter.WithRegisterer(reg))

	get(t, first, "/health")
	get(t, second, "/health")

	n, err := testutil.GatherAndCount(reg, "appguide_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	expected := `
# HELP appguide_http_requests_total HTTP requests served, by route pattern and status code
# TYPE appguide_http_requests_total counter
appguide_http_requests_total{code="200",route="/health"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "appguide_http_requests_total"))
}
