package wizard

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/aretw0/appguide/internal/presentation/graph"
	"github.com/aretw0/appguide/pkg/registry"
)

// Screen is a UI screen inferred from a phase 1 deliverable.
type Screen struct {
	Name        string
	Description string
}

// Slug is the file-system name of the screen.
func (s Screen) Slug() string {
	return strings.ReplaceAll(strings.ToLower(s.Name), " ", "_")
}

// FlowDocs are written for every screen. Each entry is file name and heading prefix.
var FlowDocs = [][2]string{
	{"user_flow.md", "User Flow"},
	{"data_flow.md", "Data Flow"},
	{"state_flow.md", "State Flow"},
	{"api_service_flow.md", "API/Service Flow"},
	{"error_exception_flow.md", "Error/Exception Flow"},
	{"security_privacy_flow.md", "Security/Privacy Flow"},
}

// Notices printed when a wizard cannot run.
const (
	NoticePhase1Missing = "Phase 1 deliverables not found. Please complete Phase 1 first."
	NoticeNoScreens     = "No screens detected. Skipping Phase 2."
)

// InferScreens derives one screen per markdown file in dir, sorted by file name.
func InferScreens(dir string) ([]Screen, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, false
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".md" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	screens := make([]Screen, 0, len(names))
	for _, name := range names {
		stem := strings.TrimSuffix(name, ".md")
		screens = append(screens, Screen{
			Name:        titleCase(strings.ReplaceAll(stem, "_", " ")),
			Description: "Generated from " + name,
		})
	}
	return screens, true
}

// titleCase upper-cases every letter that follows a non-letter and lower-cases the rest.
func titleCase(s string) string {
	prevLetter := false
	return strings.Map(func(r rune) rune {
		after := prevLetter
		prevLetter = unicode.IsLetter(r)
		switch {
		case !prevLetter:
			return r
		case after:
			return unicode.ToLower(r)
		default:
			return unicode.ToUpper(r)
		}
	}, s)
}

func (g *Generator) phase2(w *Writer, spec registry.PhaseSpec) (string, error) {
	phase1, _ := specFor(1)
	screens, ok := InferScreens(filepath.Join(g.root, phase1.Folder, "deliverables"))
	if !ok {
		return NoticePhase1Missing, nil
	}
	if len(screens) == 0 {
		return NoticeNoScreens, nil
	}

	err := w.Within(filepath.Join(spec.Folder, "screen_flows"), func(s *Scope) error {
		for _, sc := range screens {
			if err := s.WriteFile(sc.Slug()+".mmd", graph.ScreenFlow(sc.Name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	err = w.Within(filepath.Join(spec.Folder, "deliverables"), func(s *Scope) error {
		for _, sc := range screens {
			for _, doc := range FlowDocs {
				content := "# " + doc[1] + " for " + sc.Name + "\n\n" + sc.Description + "\n"
				if err := s.WriteFile(filepath.Join(sc.Slug(), doc[0]), content); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return "", w.Within(spec.Folder, func(s *Scope) error {
		var sb strings.Builder
		sb.WriteString("# Phase 2 Task Board\n\n## Screens\n")
		for _, sc := range screens {
			sb.WriteString("- [ ] " + sc.Name + ": " + sc.Description + "\n")
		}
		return s.WriteFile("task_board.md", sb.String())
	})
}
