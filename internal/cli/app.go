// Package cli wires configuration, logging, recorders and metrics into a Guide and
// holds the command implementations shared by the appguide binaries.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/appguide"
	"github.com/aretw0/appguide/internal/config"
	"github.com/aretw0/appguide/internal/logging"
	"github.com/aretw0/appguide/pkg/adapters/file"
	"github.com/aretw0/appguide/pkg/adapters/redis"
	"github.com/aretw0/appguide/pkg/observability"
	"github.com/aretw0/appguide/pkg/ports"
)

// Options are the process-level settings, usually taken from flags.
type Options struct {
	Dir        string
	ConfigPath string
	Debug      bool

	In  io.Reader
	Out io.Writer
	// Err receives log records.
	Err io.Writer
}

// App is a fully wired project.
type App struct {
	Config   config.Config
	Guide    *appguide.Guide
	Logger   *slog.Logger
	Metrics  *observability.Metrics
	Recorder ports.ProgressRecorder

	Out io.Writer

	closers []func() error
}

// Setup loads the configuration for opts.Dir and builds the Guide.
func Setup(opts Options) (*App, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	cfg, err := config.Load(opts.Dir, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger := logging.NewWriter(opts.Err, logging.LevelFor(opts.Debug || cfg.Debug))

	app := &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: observability.NewMetrics(),
		Out:     opts.Out,
	}

	rec, err := app.newRecorder(opts.Dir)
	if err != nil {
		return nil, err
	}
	app.Recorder = rec

	guideOpts := []appguide.Option{
		appguide.WithLogger(logger),
		appguide.WithInput(opts.In),
		appguide.WithOutput(opts.Out),
		appguide.WithGuideDir(cfg.GuideDir),
		appguide.WithLifecycleHooks(observability.Chain(app.Metrics.Hooks(), observability.LogHooks(logger))),
	}
	if rec != nil {
		guideOpts = append(guideOpts, appguide.WithRecorder(rec))
	}

	g, err := appguide.New(opts.Dir, guideOpts...)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("error initializing guide: %w", err)
	}
	app.Guide = g

	logger.Debug("project loaded", "root", g.Root(), "recorder", cfg.Recorder.Kind)
	return app, nil
}

func (a *App) newRecorder(root string) (ports.ProgressRecorder, error) {
	switch a.Config.Recorder.Kind {
	case config.RecorderNone:
		return nil, nil
	case config.RecorderRedis:
		rec := redis.New(
			a.Config.Recorder.RedisAddr,
			a.Config.Recorder.RedisPassword,
			a.Config.Recorder.RedisDB,
			redis.WithPrefix(a.Config.Recorder.Prefix),
		)
		a.closers = append(a.closers, rec.Close)
		return rec, nil
	case config.RecorderFile:
		return file.New(a.Config.ProgressPath(root)), nil
	default:
		return nil, fmt.Errorf("%w: recorder.kind %q", config.ErrInvalidConfig, a.Config.Recorder.Kind)
	}
}

// Close releases recorder connections.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
