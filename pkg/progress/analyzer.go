// Package progress derives per-phase progress summaries from the filesystem.
package progress

import (
	"io"
	"log/slog"

	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/guide"
)

// PhaseSource supplies the ordered phases to analyze. *registry.Registry satisfies it.
type PhaseSource interface {
	Phases() []domain.PhaseDescriptor
}

// Analyzer combines the registry, guide headings and progress detectors.
// Summarize is read-only, so repeated calls over an unchanged tree agree.
type Analyzer struct {
	phases PhaseSource
	logger *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets a structured logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates an analyzer over the given phases.
func NewAnalyzer(phases PhaseSource, opts ...Option) *Analyzer {
	a := &Analyzer{
		phases: phases,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Summarize returns one summary per phase, in registry order.
func (a *Analyzer) Summarize() []domain.ProgressSummary {
	phases := a.phases.Phases()
	out := make([]domain.ProgressSummary, 0, len(phases))
	for _, p := range phases {
		s := domain.ProgressSummary{
			Index:        p.Index,
			Title:        p.Title,
			GuideHeading: guide.Heading(p.GuidePath),
			HasProgress:  p.HasProgress(),
		}
		a.logger.Debug("phase analyzed", "phase", p.Index, "folder", p.Folder, "has_progress", s.HasProgress)
		out = append(out, s)
	}
	return out
}

// ResumeIndex returns the index of the phase after the last one with progress,
// or 0 when every phase already shows progress. With no progress at all it is 1.
func ResumeIndex(summaries []domain.ProgressSummary) int {
	last := 0
	for _, s := range summaries {
		if s.HasProgress && s.Index > last {
			last = s.Index
		}
	}
	if last >= len(summaries) {
		return 0
	}
	for _, s := range summaries {
		if s.Index > last {
			return s.Index
		}
	}
	return 0
}

// Percent returns the share of phases showing progress, 0..100.
func Percent(summaries []domain.ProgressSummary) float64 {
	if len(summaries) == 0 {
		return 0
	}
	done := 0
	for _, s := range summaries {
		if s.HasProgress {
			done++
		}
	}
	return float64(done) * 100 / float64(len(summaries))
}
