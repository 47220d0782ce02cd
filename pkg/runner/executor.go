package runner

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/guide"
)

// StepInstruction is printed under every step.
const StepInstruction = "Instruction: Follow the directive in the guide."

// Executor walks phase guides step by step, waiting for one acknowledgment per step.
//
// Each phase is a strict linear machine: Idle -> PresentingStep(1..N) -> Done.
// There is no branching and no retry; malformed step lines just shorten N.
type Executor struct {
	settings
	in  InputSource
	out io.Writer
}

// NewExecutor creates an executor reading acknowledgments from in and writing to out.
func NewExecutor(in InputSource, out io.Writer, opts ...Option) *Executor {
	return &Executor{
		settings: newSettings(opts),
		in:       in,
		out:      out,
	}
}

// RunPhase presents every step of the phase guide.
// A missing or unreadable guide is reported and skipped (nil error). An input
// failure stops the phase and is returned; domain.ErrInputExhausted means the
// session should end quietly.
func (e *Executor) RunPhase(ctx context.Context, p domain.PhaseDescriptor) error {
	fmt.Fprintf(e.out, "\nStarting %s...\n", p.Title)

	steps, err := guide.Steps(p.GuidePath)
	if err != nil {
		if errors.Is(err, domain.ErrGuideNotFound) {
			fmt.Fprintf(e.out, "Guide not found for %s. Skipping...\n", p.Title)
		} else {
			fmt.Fprintf(e.out, "Guide unreadable for %s. Skipping...\n", p.Title)
		}
		e.logger.Warn("phase skipped", "phase", p.Index, "guide", p.GuidePath, "err", err)
		e.leave(ctx, p, len(steps), domain.OutcomeSkipped)
		return nil
	}

	total := len(steps)
	e.enter(ctx, p, total)
	e.logger.Debug("phase started", "phase", p.Index, "steps", total)

	for i, step := range steps {
		fmt.Fprintf(e.out, "\n%s\n", step)
		fmt.Fprintln(e.out, StepInstruction)

		prompt := fmt.Sprintf("Step %d of %d complete ✅. Press Enter to continue...", i+1, total)
		if _, err := e.in.Next(ctx, prompt); err != nil {
			e.leave(ctx, p, total, domain.OutcomeInterrupted)
			return fmt.Errorf("phase %d step %d of %d: %w", p.Index, i+1, total, err)
		}

		if e.hooks.OnStepAck != nil {
			e.hooks.OnStepAck(ctx, &domain.StepEvent{
				EventBase:  domain.EventBase{Timestamp: e.now(), Type: domain.EventStepAck},
				PhaseIndex: p.Index,
				Position:   i + 1,
				Total:      total,
				Text:       step,
			})
		}
	}

	fmt.Fprintf(e.out, "\n%s complete ✅\n\n", p.Title)
	e.leave(ctx, p, total, domain.OutcomeCompleted)
	return nil
}

// Traverse runs every phase in order. Only when all of them finish is the
// recorder notified, once per phase. Recorder failures are logged, not returned.
func (e *Executor) Traverse(ctx context.Context, phases []domain.PhaseDescriptor) error {
	for _, p := range phases {
		if err := e.RunPhase(ctx, p); err != nil {
			return err
		}
	}
	fmt.Fprintln(e.out, "\nAll phases executed successfully!")
	fmt.Fprintln(e.out)

	e.record(ctx, phases)
	return nil
}

func (e *Executor) record(ctx context.Context, phases []domain.PhaseDescriptor) {
	if e.recorder == nil {
		return
	}
	at := e.now()
	for _, p := range phases {
		rec := domain.CompletionRecord{PhaseIndex: p.Index, Title: p.Title, CompletedAt: at}
		if err := e.recorder.Record(ctx, rec); err != nil {
			e.logger.Warn("failed to record phase completion", "phase", p.Index, "err", err)
		}
	}
}

func (e *Executor) enter(ctx context.Context, p domain.PhaseDescriptor, steps int) {
	if e.hooks.OnPhaseEnter != nil {
		e.hooks.OnPhaseEnter(ctx, e.phaseEvent(domain.EventPhaseEnter, p, steps, ""))
	}
}

func (e *Executor) leave(ctx context.Context, p domain.PhaseDescriptor, steps int, outcome string) {
	if e.hooks.OnPhaseLeave != nil {
		e.hooks.OnPhaseLeave(ctx, e.phaseEvent(domain.EventPhaseLeave, p, steps, outcome))
	}
}

func (e *Executor) phaseEvent(typ domain.EventType, p domain.PhaseDescriptor, steps int, outcome string) *domain.PhaseEvent {
	return &domain.PhaseEvent{
		EventBase:  domain.EventBase{Timestamp: e.now(), Type: typ},
		PhaseIndex: p.Index,
		Title:      p.Title,
		Steps:      steps,
		Outcome:    outcome,
	}
}

// isTermination reports whether err ends a session cleanly.
func isTermination(err error) bool {
	return errors.Is(err, domain.ErrInputExhausted) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
