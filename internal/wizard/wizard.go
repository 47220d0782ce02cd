// Package wizard generates placeholder deliverables for each phase.
//
// Wizards are the only part of appguide that writes into phase folders. The chat
// itself stays read-only; wizards run on explicit request (appguidectl generate).
package wizard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/ports"
	"github.com/aretw0/appguide/pkg/registry"
	"github.com/aretw0/appguide/pkg/runner"
)

// Result describes one wizard run.
type Result struct {
	Phase int
	// Files lists created files relative to the project root.
	Files []string
	// Skipped holds the notice printed when prerequisites were missing.
	Skipped string
}

// Generator runs phase wizards against a project root.
type Generator struct {
	root     string
	in       runner.InputSource
	out      io.Writer
	recorder ports.ProgressRecorder
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithInput sets where the phase 1 questionnaire reads answers. Without it every
// question keeps its default.
func WithInput(in runner.InputSource) Option {
	return func(g *Generator) {
		g.in = in
	}
}

// WithOutput sets the writer for notices (default: os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(g *Generator) {
		g.out = w
	}
}

// WithRecorder sets the recorder notified when wizards 3 to 5 finish.
func WithRecorder(rec ports.ProgressRecorder) Option {
	return func(g *Generator) {
		g.recorder = rec
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithClock overrides the time source for timestamps and records.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// NewGenerator creates a generator for the project at root.
func NewGenerator(root string, opts ...Option) *Generator {
	g := &Generator{
		root:   root,
		in:     runner.NewScriptedSource(nil),
		out:    os.Stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run executes the wizard of phase index.
func (g *Generator) Run(ctx context.Context, index int) (Result, error) {
	spec, ok := specFor(index)
	if !ok {
		return Result{}, fmt.Errorf("%w: %d", domain.ErrPhaseNotFound, index)
	}

	w := NewWriter(g.root)
	res := Result{Phase: index}
	g.logger.Debug("wizard started", "phase", index)

	var err error
	switch index {
	case 1:
		err = g.phase1(ctx, w, spec)
	case 2:
		res.Skipped, err = g.phase2(w, spec)
	case 3:
		res.Skipped, err = g.phase3(w, spec)
	case 4:
		err = g.phase4(w, spec)
	case 5:
		err = g.phase5(w, spec)
	}
	res.Files = w.Created()
	if err != nil {
		return res, fmt.Errorf("phase %d wizard: %w", index, err)
	}

	if res.Skipped != "" {
		fmt.Fprintln(g.out, res.Skipped)
		g.logger.Debug("wizard skipped", "phase", index, "reason", res.Skipped)
		return res, nil
	}

	fmt.Fprintf(g.out, "\n%s deliverables created:\n", spec.Title)
	for _, f := range res.Files {
		fmt.Fprintf(g.out, "- %s\n", f)
	}

	if index >= 3 {
		g.record(ctx, spec)
	}
	g.logger.Debug("wizard finished", "phase", index, "files", len(res.Files))
	return res, nil
}

func (g *Generator) record(ctx context.Context, spec registry.PhaseSpec) {
	if g.recorder == nil {
		return
	}
	rec := domain.CompletionRecord{PhaseIndex: spec.Index, Title: spec.Title, CompletedAt: g.now()}
	if err := g.recorder.Record(ctx, rec); err != nil {
		g.logger.Warn("failed to record phase completion", "phase", spec.Index, "err", err)
	}
}

func specFor(index int) (registry.PhaseSpec, bool) {
	for _, s := range registry.DefaultSpecs {
		if s.Index == index {
			return s, true
		}
	}
	return registry.PhaseSpec{}, false
}
