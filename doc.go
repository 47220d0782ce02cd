/*
Package appguide walks a developer through the five phases of building an app:
concept and strategy, development planning, AI-assisted execution, testing, and launch.

Each phase has a markdown guide (by default under copilot_brain/) and a folder where
its deliverables live. Progress is inferred from the filesystem only: a phase "has
progress" when its folder holds the artifacts that phase produces.

# Usage

	g, err := appguide.New(".")
	if err != nil {
		log.Fatal(err)
	}

	// Print progress.
	for _, s := range g.Summarize() {
		fmt.Printf("%s [%s]\n", s.Title, s.Status())
	}

	// Interactive menu on stdin/stdout.
	if err := g.Chat(ctx, nil); err != nil {
		log.Fatal(err)
	}

Scripted sessions pass the answers up front and never block:

	g.Chat(ctx, []string{"2", "3"})

The lower-level building blocks live under pkg/: scan (artifact detection), guide
(heading, preview and step extraction), registry (phase descriptors and detectors),
progress (summaries) and runner (phase executor and conversation driver).
*/
package appguide
