package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/appguide/pkg/domain"
)

// PhaseMap produces a Mermaid flowchart of the five phases in order.
// Phases with progress are styled as visited; the resume phase (if any) as current.
func PhaseMap(summaries []domain.ProgressSummary, resume int) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, s := range summaries {
		id := phaseID(s.Index)
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, escapeLabel(s.Title)))
		if i > 0 {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", phaseID(summaries[i-1].Index), id))
		}
	}

	sb.WriteString("\n    %% Progress Styles\n")
	// Force black text (color:#000) for contrast regardless of theme.
	sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
	for _, s := range summaries {
		if s.HasProgress {
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", phaseID(s.Index)))
		}
	}
	if resume > 0 {
		sb.WriteString(fmt.Sprintf("    class %s current;\n", phaseID(resume)))
	}

	return sb.String()
}

// ScreenFlow produces the placeholder flow of a single screen: Start -> screen -> End.
func ScreenFlow(screen string) string {
	id := SanitizeID(screen)
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString(fmt.Sprintf("    Start((\"Start\")) --> %s[\"%s\"]\n", id, escapeLabel(screen)))
	sb.WriteString(fmt.Sprintf("    %s --> End((\"End\"))\n", id))
	return sb.String()
}

// SanitizeID turns a free-form name into a Mermaid node ID.
func SanitizeID(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" || s == "end" || s == "start" {
		// Reserved by the flow itself.
		s = "screen_" + s
	}
	return s
}

func phaseID(index int) string {
	return fmt.Sprintf("phase%d", index)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
