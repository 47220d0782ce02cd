package runner

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/ports"
)

// settings holds the configuration shared by Executor and Driver.
type settings struct {
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	recorder ports.ProgressRecorder
	now      func() time.Time
}

func newSettings(opts []Option) settings {
	s := settings{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option defines a functional option for configuring the Executor and Driver.
type Option func(*settings)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *settings) {
		s.hooks = hooks
	}
}

// WithRecorder sets the progress recorder notified after a full traversal.
func WithRecorder(rec ports.ProgressRecorder) Option {
	return func(s *settings) {
		s.recorder = rec
	}
}

// WithClock overrides the time source used for completion records.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}
