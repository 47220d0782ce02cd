package maintenance

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/progress"
)

// ReportFileName is written in the project root.
const ReportFileName = "PROGRESS_REPORT.md"

// BuildReport renders the progress report.
func BuildReport(summaries []domain.ProgressSummary, at time.Time) string {
	var sb strings.Builder
	sb.WriteString("# Master Goal Progress\n\n")
	fmt.Fprintf(&sb, "Overall Progress: %.2f%%\n\n", progress.Percent(summaries))

	sb.WriteString("## Phase Breakdown\n")
	for _, s := range summaries {
		pct := 0
		if s.HasProgress {
			pct = 100
		}
		fmt.Fprintf(&sb, "- %s: %d%% (%s)\n", s.Title, pct, s.Status())
	}

	if next := progress.ResumeIndex(summaries); next > 0 {
		fmt.Fprintf(&sb, "\nNext phase: %d\n", next)
	} else {
		sb.WriteString("\nAll phases show progress.\n")
	}
	fmt.Fprintf(&sb, "\n_Generated on %s_\n", at.Format(domain.CompletionTimeLayout))
	return sb.String()
}

// WriteReport writes the report into root and returns its path.
func WriteReport(root string, summaries []domain.ProgressSummary, at time.Time) (string, error) {
	path := filepath.Join(root, ReportFileName)
	if err := os.WriteFile(path, []byte(BuildReport(summaries, at)), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
