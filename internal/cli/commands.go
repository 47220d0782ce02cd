package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/appguide/internal/maintenance"
	"github.com/aretw0/appguide/internal/presentation/graph"
	"github.com/aretw0/appguide/internal/presentation/tui"
	"github.com/aretw0/appguide/internal/watch"
	"github.com/aretw0/appguide/internal/wizard"
	httpAdapter "github.com/aretw0/appguide/pkg/adapters/http"
	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/progress"
)

// Status output formats.
const (
	FormatText    = "text"
	FormatMermaid = "mermaid"
)

// PreviewPause is shown between phases when every guide is previewed.
const PreviewPause = "Press Enter to view the next phase..."

// ShutdownTimeout bounds graceful HTTP shutdown.
const ShutdownTimeout = 5 * time.Second

// ErrBrokenLinks is returned by Validate when at least one link is broken.
var ErrBrokenLinks = errors.New("broken links found")

// Status prints the progress summary and the phase to resume at.
func (a *App) Status(format string) error {
	sums := a.Guide.Summarize()
	resume := progress.ResumeIndex(sums)

	switch format {
	case FormatMermaid:
		fmt.Fprint(a.Out, graph.PhaseMap(sums, resume))
		return nil
	case FormatText, "":
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatText, FormatMermaid)
	}

	for _, s := range sums {
		fmt.Fprintf(a.Out, "- %s — %s [%s]\n", s.Title, s.GuideHeading, s.Status())
	}
	fmt.Fprintf(a.Out, "\nOverall progress: %.0f%%\n", progress.Percent(sums))
	if resume > 0 {
		fmt.Fprintf(a.Out, "Resume at phase %d.\n", resume)
	} else {
		fmt.Fprintln(a.Out, "All phases show progress.")
	}
	return nil
}

// WatchStatus prints the status and prints it again after every change below
// the project root, until ctx is done.
func (a *App) WatchStatus(ctx context.Context, format string) error {
	w, err := watch.New(a.Guide.Root(), watch.WithLogger(a.Logger))
	if err != nil {
		return err
	}
	if err := a.Status(format); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for range w.Changes() {
		fmt.Fprintln(a.Out)
		if err := a.Status(format); err != nil {
			return err
		}
	}
	return <-done
}

// Preview prints the bounded guide preview of one phase through render.
func (a *App) Preview(index int, render tui.Renderer) error {
	if render == nil {
		render = tui.Plain
	}
	text, err := a.Guide.Preview(index, a.Config.PreviewLines)
	if err != nil {
		return err
	}
	out, err := render(text)
	if err != nil {
		a.Logger.Warn("failed to render guide", "phase", index, "err", err)
	}
	fmt.Fprintln(a.Out, strings.TrimRight(out, "\n"))
	return nil
}

// PreviewAll previews every phase, pausing for Enter between them.
// End of input stops the tour.
func (a *App) PreviewAll(ctx context.Context, render tui.Renderer) error {
	src := a.Guide.Input()
	phases := a.Guide.Registry().Phases()
	for i, p := range phases {
		fmt.Fprintf(a.Out, "\n=== %s ===\n", p.Title)
		if err := a.Preview(p.Index, render); err != nil {
			return err
		}
		if i == len(phases)-1 {
			break
		}
		if _, err := src.Next(ctx, PreviewPause); err != nil {
			if errors.Is(err, domain.ErrInputExhausted) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Generate runs the deliverable wizard of phase index.
func (a *App) Generate(ctx context.Context, index int) (wizard.Result, error) {
	gen := wizard.NewGenerator(a.Guide.Root(),
		wizard.WithInput(a.Guide.Input()),
		wizard.WithOutput(a.Out),
		wizard.WithRecorder(a.Recorder),
		wizard.WithLogger(a.Logger),
	)
	return gen.Run(ctx, index)
}

// Reset deletes generated files. Without force the user must confirm first.
func (a *App) Reset(ctx context.Context, force bool) error {
	if !force {
		ok, err := maintenance.Confirm(ctx, a.Guide.Input())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.Out, "Reset cancelled.")
			return nil
		}
	}
	_, err := maintenance.Reset(a.Guide.Root(), a.Out)
	return err
}

// Report writes the progress report into the project root.
func (a *App) Report() error {
	path, err := maintenance.WriteReport(a.Guide.Root(), a.Guide.Summarize(), time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Progress report written to %s\n", path)
	return nil
}

// Validate reports broken markdown links in the project.
func (a *App) Validate() error {
	broken, err := maintenance.ValidateLinks(a.Guide.Root())
	if err != nil {
		return err
	}
	for _, b := range broken {
		fmt.Fprintln(a.Out, b.String())
	}
	if len(broken) > 0 {
		return fmt.Errorf("%w: %d", ErrBrokenLinks, len(broken))
	}
	fmt.Fprintln(a.Out, "All links are valid.")
	return nil
}

// Serve exposes the progress API on addr until ctx is cancelled.
// ready, when set, receives the bound address once the listener is up.
func (a *App) Serve(ctx context.Context, addr string, ready func(net.Addr)) error {
	handler := httpAdapter.NewHandler(a.Guide,
		httpAdapter.WithRegisterer(a.Metrics.Registry),
		httpAdapter.WithGatherer(a.Metrics.Registry),
		httpAdapter.WithPreviewLines(a.Config.PreviewLines),
		httpAdapter.WithLogger(a.Logger),
	)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Serve(ln)
	}()
	printSystemMessage(a.Out, "Serving %s on %s", a.Guide.Root(), ln.Addr())
	if ready != nil {
		ready(ln.Addr())
	}

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warn("graceful shutdown did not complete", "timeout", ShutdownTimeout, "err", err)
		if err := srv.Close(); err != nil {
			return fmt.Errorf("error killing server: %w", err)
		}
	}
	printSystemMessage(a.Out, "Server stopped gracefully")
	return nil
}
