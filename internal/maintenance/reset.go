// Package maintenance holds project housekeeping: reset, progress report and
// link validation.
package maintenance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/runner"
)

// ResetPrompt asks for confirmation before deleting generated files.
const ResetPrompt = "Are you sure you want to reset the project? This will delete all generated files. (yes/no): "

// GeneratedPaths are the wizard outputs and the report, relative to the project root.
// The progress log is history, not output, and is kept.
var GeneratedPaths = []string{
	"phase1_concept_strategy/deliverables",
	"phase2_development_planning/screen_flows",
	"phase2_development_planning/deliverables",
	"phase2_development_planning/task_board.md",
	"phase3_ai_execution/codebase",
	"phase3_ai_execution/tests",
	"phase3_ai_execution/ci_cd_workflows.md",
	"phase4_testing_iteration/test_results.md",
	"phase4_testing_iteration/bug_report.md",
	"phase4_testing_iteration/ci_cd_logs.md",
	"phase5_launch_growth/appstore_metadata.md",
	"phase5_launch_growth/marketing_funnel.md",
	"phase5_launch_growth/monetization.md",
	"phase5_launch_growth/retention_systems.md",
	"phase5_launch_growth/trust_safety.md",
	ReportFileName,
}

// Confirm asks the reset question. Only "yes" (any case) confirms; end of input declines.
func Confirm(ctx context.Context, in runner.InputSource) (bool, error) {
	ans, err := in.Next(ctx, ResetPrompt)
	if errors.Is(err, domain.ErrInputExhausted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(ans), "yes"), nil
}

// Reset deletes every generated path under root and reports each deletion to out.
// Missing paths are ignored. It returns the removed paths, relative to root.
func Reset(root string, out io.Writer) ([]string, error) {
	var removed []string
	for _, rel := range GeneratedPaths {
		path := filepath.Join(root, filepath.FromSlash(rel))
		info, err := os.Lstat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, fmt.Errorf("failed to inspect %s: %w", rel, err)
		}

		kind := "file"
		if info.IsDir() {
			kind = "folder"
		}
		if err := os.RemoveAll(path); err != nil {
			return removed, fmt.Errorf("failed to delete %s: %w", rel, err)
		}
		fmt.Fprintf(out, "Deleted %s: %s\n", kind, rel)
		removed = append(removed, rel)
	}
	fmt.Fprintln(out, "Project reset successfully!")
	return removed, nil
}
