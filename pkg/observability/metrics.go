package observability

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/aretw0/appguide/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the chat counters. Each instance owns its registry so that
// several guides (or tests) never collide on registration.
type Metrics struct {
	Registry *prometheus.Registry

	menuChoices   *prometheus.CounterVec
	phaseRuns     *prometheus.CounterVec
	stepAcks      *prometheus.CounterVec
	phaseDuration *prometheus.HistogramVec

	mu      sync.Mutex
	started map[int]time.Time
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		menuChoices: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "appguide_menu_choices_total",
				Help: "Menu tokens dispatched, by choice (invalid tokens are grouped)",
			},
			[]string{"choice"},
		),
		phaseRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "appguide_phase_runs_total",
				Help: "Phase walkthroughs, by phase and outcome",
			},
			[]string{"phase", "outcome"},
		),
		stepAcks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "appguide_steps_acknowledged_total",
				Help: "Guide steps acknowledged, by phase",
			},
			[]string{"phase"},
		),
		phaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "appguide_phase_duration_seconds",
				Help:    "Time spent inside a phase walkthrough",
				Buckets: []float64{1, 10, 30, 60, 300, 900},
			},
			[]string{"phase"},
		),
		started: make(map[int]time.Time),
	}
	m.Registry.MustRegister(m.menuChoices, m.phaseRuns, m.stepAcks, m.phaseDuration)
	return m
}

// Hooks returns lifecycle hooks that update the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnMenuChoice: func(ctx context.Context, e *domain.ChoiceEvent) {
			choice := e.Choice
			if !e.Valid {
				// Free-form input must not blow up label cardinality.
				choice = "invalid"
			}
			m.menuChoices.WithLabelValues(choice).Inc()
		},
		OnPhaseEnter: func(ctx context.Context, e *domain.PhaseEvent) {
			m.mu.Lock()
			m.started[e.PhaseIndex] = e.Timestamp
			m.mu.Unlock()
		},
		OnPhaseLeave: func(ctx context.Context, e *domain.PhaseEvent) {
			phase := strconv.Itoa(e.PhaseIndex)
			m.phaseRuns.WithLabelValues(phase, e.Outcome).Inc()

			m.mu.Lock()
			start, ok := m.started[e.PhaseIndex]
			delete(m.started, e.PhaseIndex)
			m.mu.Unlock()
			if ok {
				m.phaseDuration.WithLabelValues(phase).Observe(e.Timestamp.Sub(start).Seconds())
			}
		},
		OnStepAck: func(ctx context.Context, e *domain.StepEvent) {
			m.stepAcks.WithLabelValues(strconv.Itoa(e.PhaseIndex)).Inc()
		},
	}
}
