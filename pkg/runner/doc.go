/*
Package runner implements the conversation loop and phase walkthroughs of appguide.

It bridges the read-only core (registry, guide reader, progress analyzer) and the
user. All input flows through an InputSource, so the same control flow serves a live
terminal and a scripted replay.

# Key Components

  - InputSource: Supplies answers. TextSource reads a stream, ScriptedSource replays a queue.
  - Executor: Presents each "Step" line of a phase guide and waits for acknowledgment.
  - Driver: The menu loop (start, view progress, exit).

# Usage

	in := runner.NewScriptedSource(os.Stdout, "2", "3")
	exec := runner.NewExecutor(in, os.Stdout)
	drv := runner.NewDriver(in, os.Stdout, analyzer, reg, exec)

	if err := drv.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
