package maintenance_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/appguide/internal/maintenance"
	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		tokens []string
		want   bool
	}{
		{[]string{"yes"}, true},
		{[]string{" YES "}, true},
		{[]string{"y"}, false},
		{[]string{"no"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		ok, err := maintenance.Confirm(ctx, runner.NewScriptedSource(nil, tt.tokens...))
		require.NoError(t, err)
		assert.Equal(t, tt.want, ok, "%q", tt.tokens)
	}
}

func TestReset(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "phase1_concept_strategy/deliverables/01_problem_statement.md", "x")
	writeFile(t, root, "phase1_concept_strategy/my_notes.md", "keep")
	writeFile(t, root, "phase4_testing_iteration/test_results.md", "x")
	writeFile(t, root, "MASTER_GOAL_PROGRESS.md", "history")

	var out bytes.Buffer
	removed, err := maintenance.Reset(root, &out)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"phase1_concept_strategy/deliverables",
		"phase4_testing_iteration/test_results.md",
	}, removed)
	assert.Contains(t, out.String(), "Deleted folder: phase1_concept_strategy/deliverables\n")
	assert.Contains(t, out.String(), "Deleted file: phase4_testing_iteration/test_results.md\n")
	assert.True(t, strings.HasSuffix(out.String(), "Project reset successfully!\n"))

	assert.NoDirExists(t, filepath.Join(root, "phase1_concept_strategy", "deliverables"))
	assert.FileExists(t, filepath.Join(root, "phase1_concept_strategy", "my_notes.md"))
	assert.FileExists(t, filepath.Join(root, "MASTER_GOAL_PROGRESS.md"))

	// Idempotent.
	removed, err = maintenance.Reset(root, &out)
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestBuildReport(t *testing.T) {
	sums := []domain.ProgressSummary{
		{Index: 1, Title: "Phase 1: Concept & Strategy", HasProgress: true},
		{Index: 2, Title: "Phase 2: Development Planning", HasProgress: true},
		{Index: 3, Title: "Phase 3: AI Execution"},
		{Index: 4, Title: "Phase 4: Testing & Iteration"},
		{Index: 5, Title: "Phase 5: Launch & Growth"},
	}
	at := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	report := maintenance.BuildReport(sums, at)
	assert.True(t, strings.HasPrefix(report, "# Master Goal Progress\n\nOverall Progress: 40.00%\n"))
	assert.Contains(t, report, "- Phase 2: Development Planning: 100% (progress found)\n")
	assert.Contains(t, report, "- Phase 3: AI Execution: 0% (no progress)\n")
	assert.Contains(t, report, "Next phase: 3\n")
	assert.Contains(t, report, "_Generated on 2026-10-16 09:30:00_")

	for i := range sums {
		sums[i].HasProgress = true
	}
	assert.Contains(t, maintenance.BuildReport(sums, at), "All phases show progress.")
}

func TestWriteReport(t *testing.T) {
	root := t.TempDir()
	path, err := maintenance.WriteReport(root, nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, maintenance.ReportFileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Overall Progress: 0.00%")
}

func TestValidateLinks(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md", strings.Join([]string{
		"# Project",
		"See [guide](copilot_brain/phase_1_concept_strategy.md) and [missing](docs/nope.md).",
		"External [site](https://example.com), [mail](mailto:a@b.c), [anchor](#top).",
		"![diagram](img/flow.png)",
		"[rooted](/copilot_brain/phase_1_concept_strategy.md#step-1)",
	}, "\n"))
	writeFile(t, root, "copilot_brain/phase_1_concept_strategy.md", "[back](../README.md) [bad](../GONE.md)")
	writeFile(t, root, ".git/notes.md", "[ignored](nowhere.md)")
	writeFile(t, root, "notes.txt", "[ignored](nowhere.md)")

	broken, err := maintenance.ValidateLinks(root)
	require.NoError(t, err)
	require.Len(t, broken, 3)

	assert.Equal(t, "README.md", broken[0].File)
	assert.Equal(t, "docs/nope.md", broken[0].Target)
	assert.Equal(t, "img/flow.png", broken[1].Target)
	assert.Equal(t, maintenance.BrokenLink{File: "copilot_brain/phase_1_concept_strategy.md", Target: "../GONE.md"}, broken[2])
	assert.Equal(t, "Broken link in README.md: docs/nope.md", broken[0].String())
}
