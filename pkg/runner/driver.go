package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/progress"
)

// Menu choices.
const (
	ChoiceStart    = "1"
	ChoiceProgress = "2"
	ChoiceExit     = "3"
)

// Console strings of the conversation.
const (
	MenuPrompt    = "> "
	InvalidChoice = "Invalid choice. Please select 1, 2, or 3."
	Farewell      = "Goodbye! If you need help again, just start the chat."
)

// Summarizer produces the per-phase progress view. *progress.Analyzer satisfies it.
type Summarizer interface {
	Summarize() []domain.ProgressSummary
}

// PhaseSource supplies the ordered phases to traverse. *registry.Registry satisfies it.
type PhaseSource interface {
	Phases() []domain.PhaseDescriptor
}

// Driver runs the conversational menu loop.
//
// It has a single state, AwaitingChoice, re-entered after choices 1 and 2. It ends on
// choice 3, on input exhaustion, or on context cancellation. The driver itself never
// writes to the filesystem.
type Driver struct {
	settings
	in       InputSource
	out      io.Writer
	analyzer Summarizer
	phases   PhaseSource
	executor *Executor
}

// NewDriver wires a conversation over the given collaborators. The executor should
// share the same InputSource so that a scripted queue drains across menu and steps.
func NewDriver(in InputSource, out io.Writer, analyzer Summarizer, phases PhaseSource, executor *Executor, opts ...Option) *Driver {
	return &Driver{
		settings: newSettings(opts),
		in:       in,
		out:      out,
		analyzer: analyzer,
		phases:   phases,
		executor: executor,
	}
}

// Run drives the menu until the user exits or input runs out.
// A bounded source that is empty at start ends the session before anything is printed.
// Input failures end the session cleanly; only context cancellation is returned.
func (d *Driver) Run(ctx context.Context) error {
	if b, ok := d.in.(Bounded); ok && b.Remaining() == 0 {
		d.logger.Debug("no scripted input, chat not started")
		return nil
	}

	fmt.Fprintln(d.out, "Welcome to the AI App Builder Chat Interface!")
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, "I’m here to guide you through planning, building, testing, and launching your app.")
	fmt.Fprintln(d.out)

	for {
		d.printMenu()

		choice, err := d.in.Next(ctx, MenuPrompt)
		if err != nil {
			return d.finish(ctx, err)
		}
		d.logger.Debug("menu choice", "choice", choice)

		switch choice {
		case ChoiceStart:
			d.emitChoice(ctx, choice, true)
			if err := d.start(ctx); err != nil {
				return d.finish(ctx, err)
			}
		case ChoiceProgress:
			d.emitChoice(ctx, choice, true)
			d.showProgress()
		case ChoiceExit:
			d.emitChoice(ctx, choice, true)
			fmt.Fprintln(d.out, Farewell)
			return nil
		default:
			d.emitChoice(ctx, choice, false)
			fmt.Fprintln(d.out, InvalidChoice)
			fmt.Fprintln(d.out)
		}
	}
}

func (d *Driver) printMenu() {
	fmt.Fprintln(d.out, "What would you like to do next?")
	fmt.Fprintln(d.out, "1) Start or resume a phase")
	fmt.Fprintln(d.out, "2) View progress")
	fmt.Fprintln(d.out, "3) Exit")
}

// start traverses every phase from the first one. The resume point is computed
// for the log only and does not skip phases.
func (d *Driver) start(ctx context.Context) error {
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, "Let’s analyze your progress and resume from where you left off.")

	resume := progress.ResumeIndex(d.analyzer.Summarize())
	d.logger.Debug("resume point computed", "phase", resume)

	err := d.executor.Traverse(ctx, d.phases.Phases())
	if err == nil {
		return nil
	}
	if isTermination(err) {
		return err
	}
	d.logger.Error("phase traversal failed", "err", err)
	fmt.Fprintf(d.out, "Failed to initiate phase: %v\n\n", err)
	return nil
}

func (d *Driver) showProgress() {
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, "Here’s your current progress:")
	fmt.Fprintln(d.out)
	for _, s := range d.analyzer.Summarize() {
		fmt.Fprintf(d.out, "- %s — %s [%s]\n", s.Title, s.GuideHeading, s.Status())
	}
	fmt.Fprintln(d.out)
}

// finish converts an input failure into the session result.
func (d *Driver) finish(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		d.logger.Debug("chat cancelled", "err", ctxErr)
		return ctxErr
	}
	if isTermination(err) {
		d.logger.Debug("input exhausted, chat finished")
		return nil
	}
	d.logger.Warn("input failed, chat finished", "err", err)
	return nil
}

func (d *Driver) emitChoice(ctx context.Context, choice string, valid bool) {
	if d.hooks.OnMenuChoice != nil {
		d.hooks.OnMenuChoice(ctx, &domain.ChoiceEvent{
			EventBase: domain.EventBase{Timestamp: d.now(), Type: domain.EventMenuChoice},
			Choice:    choice,
			Valid:     valid,
		})
	}
}
