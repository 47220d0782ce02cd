package appguide

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/guide"
	"github.com/aretw0/appguide/pkg/ports"
	"github.com/aretw0/appguide/pkg/progress"
	"github.com/aretw0/appguide/pkg/registry"
	"github.com/aretw0/appguide/pkg/runner"
)

// Guide is the high-level entry point of the library.
// It wires the phase registry, the progress analyzer and the phase executor over a
// single project root.
type Guide struct {
	registry *registry.Registry
	analyzer *progress.Analyzer

	root     string
	guideDir string
	in       io.Reader
	// source is the only reader of in.
	source *runner.TextSource
	out      io.Writer
	recorder ports.ProgressRecorder
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	now      func() time.Time
}

// Option defines a functional option for configuring the Guide.
type Option func(*Guide)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Guide) {
		g.logger = logger
	}
}

// WithInput sets the interactive input stream (default: os.Stdin).
func WithInput(r io.Reader) Option {
	return func(g *Guide) {
		g.in = r
	}
}

// WithOutput sets the transcript writer (default: os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(g *Guide) {
		g.out = w
	}
}

// WithRecorder sets the recorder notified after a full walkthrough.
func WithRecorder(rec ports.ProgressRecorder) Option {
	return func(g *Guide) {
		g.recorder = rec
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(g *Guide) {
		g.hooks = hooks
	}
}

// WithGuideDir overrides the guide directory. Relative paths are resolved against the root.
func WithGuideDir(dir string) Option {
	return func(g *Guide) {
		g.guideDir = dir
	}
}

// WithClock overrides the time source for completion records.
func WithClock(now func() time.Time) Option {
	return func(g *Guide) {
		g.now = now
	}
}

// New creates a Guide for the project rooted at root.
func New(root string, opts ...Option) (*Guide, error) {
	if root == "" {
		return nil, fmt.Errorf("project root is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	g := &Guide{
		root: abs,
		in:   os.Stdin,
		out:  os.Stdout,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g.logger = g.logger.With("project", filepath.Base(abs))
	g.source = runner.NewTextSource(g.in, g.out)

	reg, err := registry.Default(registry.Layout{Root: abs, GuideDir: g.guideDir})
	if err != nil {
		return nil, fmt.Errorf("failed to build phase registry: %w", err)
	}
	g.registry = reg
	g.analyzer = progress.NewAnalyzer(reg, progress.WithLogger(g.logger))
	return g, nil
}

// Root returns the absolute project root.
func (g *Guide) Root() string {
	return g.root
}

// Registry returns the phase registry.
func (g *Guide) Registry() *registry.Registry {
	return g.registry
}

// Input returns the interactive source over the input stream. Callers that prompt
// the user outside Initiate and Chat must read through it rather than the raw stream.
func (g *Guide) Input() runner.InputSource {
	return g.source
}

// Summarize returns the current per-phase progress.
func (g *Guide) Summarize() []domain.ProgressSummary {
	return g.analyzer.Summarize()
}

// Preview returns the first maxLines lines of the guide of phase index.
func (g *Guide) Preview(index, maxLines int) (string, error) {
	p, err := g.registry.Get(index)
	if err != nil {
		return "", err
	}
	return guide.Preview(p.GuidePath, maxLines), nil
}

// Initiate walks all five phases in order, reading acknowledgments from the input
// stream. End of input ends the walkthrough without error.
func (g *Guide) Initiate(ctx context.Context) error {
	err := g.executor(g.source).Traverse(ctx, g.registry.Phases())
	if errors.Is(err, domain.ErrInputExhausted) {
		g.logger.Debug("input exhausted, walkthrough stopped")
		return nil
	}
	return err
}

// Chat runs the conversation menu.
// A nil script reads the input stream interactively. A non-nil script is consumed
// token by token, and an empty one returns immediately without output.
func (g *Guide) Chat(ctx context.Context, script []string) error {
	var src runner.InputSource
	if script == nil {
		src = g.source
	} else {
		src = runner.NewScriptedSource(g.out, script...)
	}
	drv := runner.NewDriver(src, g.out, g.analyzer, g.registry, g.executor(src), g.runnerOptions()...)
	return drv.Run(ctx)
}

func (g *Guide) executor(src runner.InputSource) *runner.Executor {
	return runner.NewExecutor(src, g.out, g.runnerOptions()...)
}

func (g *Guide) runnerOptions() []runner.Option {
	return []runner.Option{
		runner.WithLogger(g.logger),
		runner.WithLifecycleHooks(g.hooks),
		runner.WithRecorder(g.recorder),
		runner.WithClock(g.now),
	}
}
