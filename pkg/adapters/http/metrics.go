package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aretw0/appguide/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

type httpMetrics struct {
	requests     *prometheus.CounterVec
	withProgress prometheus.Gauge
}

func newHTTPMetrics(reg prometheus.Registerer) *httpMetrics {
	return &httpMetrics{
		requests: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "appguide_http_requests_total",
				Help: "HTTP requests served, by route pattern and status code",
			},
			[]string{"route", "code"},
		)),
		withProgress: register(reg, prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "appguide_phases_with_progress",
				Help: "Phases whose progress directory held files at the last lookup",
			},
		)),
	}
}

// register returns the collector already on reg when a second handler shares it.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return c
}

func (m *httpMetrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	})
}

func (m *httpMetrics) observe(sums []domain.ProgressSummary) {
	if m == nil {
		return
	}
	n := 0
	for _, sum := range sums {
		if sum.HasProgress {
			n++
		}
	}
	m.withProgress.Set(float64(n))
}
