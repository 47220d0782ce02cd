package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/appguide/pkg/domain"
)

// LogHooks returns lifecycle hooks that write one debug record per event.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnMenuChoice: func(ctx context.Context, e *domain.ChoiceEvent) {
			logger.DebugContext(ctx, string(e.Type), "choice", e.Choice, "valid", e.Valid)
		},
		OnPhaseEnter: func(ctx context.Context, e *domain.PhaseEvent) {
			logger.DebugContext(ctx, string(e.Type), "phase", e.PhaseIndex, "steps", e.Steps)
		},
		OnPhaseLeave: func(ctx context.Context, e *domain.PhaseEvent) {
			logger.DebugContext(ctx, string(e.Type), "phase", e.PhaseIndex, "outcome", e.Outcome)
		},
		OnStepAck: func(ctx context.Context, e *domain.StepEvent) {
			logger.DebugContext(ctx, string(e.Type), "phase", e.PhaseIndex, "step", e.Position, "total", e.Total)
		},
	}
}

// Chain combines several hook sets; each event is delivered to all of them in order.
func Chain(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks
	for _, h := range sets {
		if h.OnMenuChoice != nil {
			out.OnMenuChoice = chainFunc(out.OnMenuChoice, h.OnMenuChoice)
		}
		if h.OnPhaseEnter != nil {
			out.OnPhaseEnter = chainFunc(out.OnPhaseEnter, h.OnPhaseEnter)
		}
		if h.OnPhaseLeave != nil {
			out.OnPhaseLeave = chainFunc(out.OnPhaseLeave, h.OnPhaseLeave)
		}
		if h.OnStepAck != nil {
			out.OnStepAck = chainFunc(out.OnStepAck, h.OnStepAck)
		}
	}
	return out
}

func chainFunc[E any](first, next func(context.Context, E)) func(context.Context, E) {
	if first == nil {
		return next
	}
	return func(ctx context.Context, e E) {
		first(ctx, e)
		next(ctx, e)
	}
}
