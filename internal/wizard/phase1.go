package wizard

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/registry"
)

// Question is one item of the phase 1 questionnaire.
type Question struct {
	Key     string
	Prompt  string
	Default string
}

// Questions are asked in order. An empty answer keeps the default.
var Questions = []Question{
	{Key: "AppName", Prompt: "What is the app/product name?", Default: "My App"},
	{Key: "Audience", Prompt: "Who is the main audience? (e.g., 'busy parents', 'small shops')", Default: "General users"},
	{Key: "Goals", Prompt: "Top 3 goals? (comma separated)", Default: "Goal A, Goal B, Goal C"},
	{Key: "PainPoints", Prompt: "Top pain points you want to fix? (comma separated)", Default: "Pain 1, Pain 2, Pain 3"},
	{Key: "MustHaves", Prompt: "Must-have features? (comma separated)", Default: "Feature 1, Feature 2"},
	{Key: "Metrics", Prompt: "How will you measure success? (comma separated)", Default: "Daily active users, Task completion rate"},
}

var phase1Templates = template.Must(template.New("phase1").Parse(`
{{define "01_problem_statement.md"}}# Problem Statement
Last updated: {{.Updated}}

- App name: {{.AppName}}
- Audience: {{.Audience}}

## Problem
- People experience: {{.PainPoints}}

## Why now
- This matters because: {{.Goals}}

## Scope
- Must-haves: {{.MustHaves}}
- Out of scope: To be decided
{{end}}
{{define "02_user_personas.md"}}# User Personas
Last updated: {{.Updated}}

## Primary persona
- Who: {{.Audience}}
- Goals: {{.Goals}}
- Pain points: {{.PainPoints}}

## Secondary persona
- Who: To be decided
- Goals: To be decided
- Pain points: To be decided
{{end}}
{{define "03_success_criteria.md"}}# Success Criteria
Last updated: {{.Updated}}

## Product success metrics
- {{.Metrics}}

## Experience acceptance criteria
- Users can complete the core flow in under 2 minutes
- New users understand the value within 1 session

## Technical acceptance criteria
- App runs without errors on supported platforms
- Core actions complete within acceptable time
{{end}}`))

// Phase1Deliverables are written in this order.
var Phase1Deliverables = []string{"01_problem_statement.md", "02_user_personas.md", "03_success_criteria.md"}

func (g *Generator) phase1(ctx context.Context, w *Writer, spec registry.PhaseSpec) error {
	fmt.Fprintln(g.out, "\nLet’s capture the basics. Press Enter to skip any question.")
	fmt.Fprintln(g.out)

	answers, err := g.ask(ctx)
	if err != nil {
		return err
	}
	answers["Updated"] = g.now().UTC().Format("2006-01-02 15:04") + " UTC"

	return w.Within(filepath.Join(spec.Folder, "deliverables"), func(s *Scope) error {
		for _, name := range Phase1Deliverables {
			var sb strings.Builder
			if err := phase1Templates.ExecuteTemplate(&sb, name, answers); err != nil {
				return err
			}
			if err := s.WriteFile(name, sb.String()); err != nil {
				return err
			}
		}
		return nil
	})
}

// ask runs the questionnaire. Once input is exhausted the remaining questions keep
// their defaults.
func (g *Generator) ask(ctx context.Context) (map[string]string, error) {
	answers := make(map[string]string, len(Questions))
	exhausted := false
	for _, q := range Questions {
		answers[q.Key] = q.Default
		if exhausted {
			continue
		}
		ans, err := g.in.Next(ctx, q.Prompt+" ")
		switch {
		case errors.Is(err, domain.ErrInputExhausted):
			exhausted = true
		case err != nil:
			return nil, err
		case strings.TrimSpace(ans) != "":
			answers[q.Key] = strings.TrimSpace(ans)
		}
	}
	return answers, nil
}
