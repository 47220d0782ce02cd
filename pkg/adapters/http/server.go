// Package http exposes read-only project progress over HTTP.
package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/aretw0/appguide"
	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/guide"
	"github.com/aretw0/appguide/pkg/progress"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Project is the read side of a guided project. *appguide.Guide satisfies it.
type Project interface {
	Summarize() []domain.ProgressSummary
	Preview(index, maxLines int) (string, error)
}

// ProgressResponse is returned by GET /phases.
type ProgressResponse struct {
	Phases      []domain.ProgressSummary `json:"phases"`
	ResumeIndex int                      `json:"resume_index"`
	Percent     float64                  `json:"percent"`
}

// PhaseResponse is returned by GET /phases/{index}.
type PhaseResponse struct {
	domain.ProgressSummary
	Preview string `json:"preview"`
}

type server struct {
	project      Project
	gatherer     prometheus.Gatherer
	metrics      *httpMetrics
	previewLines int
	logger       *slog.Logger
}

// Option configures the handler.
type Option func(*server)

// WithGatherer exposes the given registry on GET /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *server) {
		s.gatherer = g
	}
}

// WithRegisterer registers the request and progress collectors on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *server) {
		s.metrics = newHTTPMetrics(reg)
	}
}

// WithPreviewLines bounds the guide preview returned per phase.
func WithPreviewLines(n int) Option {
	return func(s *server) {
		s.previewLines = n
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for a project.
func NewHandler(project Project, opts ...Option) http.Handler {
	s := &server{
		project:      project,
		previewLines: guide.DefaultPreviewLines,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	if s.metrics != nil {
		r.Use(s.metrics.instrument)
	}
	r.Get("/health", s.getHealth)
	r.Get("/info", s.getInfo)
	r.Get("/phases", s.getPhases)
	r.Get("/phases/{index}", s.getPhase)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) getHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *server) getInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"app":     "appguide-http",
		"version": strings.TrimSpace(appguide.Version),
	})
}

func (s *server) getPhases(w http.ResponseWriter, r *http.Request) {
	sums := s.project.Summarize()
	s.metrics.observe(sums)
	s.writeJSON(w, ProgressResponse{
		Phases:      sums,
		ResumeIndex: progress.ResumeIndex(sums),
		Percent:     progress.Percent(sums),
	})
}

func (s *server) getPhase(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "phase index must be a number", http.StatusBadRequest)
		return
	}

	preview, err := s.project.Preview(index, s.previewLines)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		s.logger.Debug("phase lookup failed", "index", index, "err", err)
		return
	}

	resp := PhaseResponse{Preview: preview}
	sums := s.project.Summarize()
	s.metrics.observe(sums)
	for _, sum := range sums {
		if sum.Index == index {
			resp.ProgressSummary = sum
			break
		}
	}
	s.writeJSON(w, resp)
}

func (s *server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}
