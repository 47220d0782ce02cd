package progress_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/guide"
	"github.com/aretw0/appguide/pkg/progress"
	"github.com/aretw0/appguide/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestAnalyzer_Summarize(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "copilot_brain", "phase_1_concept_strategy.md"), "# Phase 1: Concept & Strategy\nStep 1: Define\n")
	write(t, filepath.Join(root, "copilot_brain", "phase_3_ai_execution.md"), "no heading here\n")
	write(t, filepath.Join(root, "phase1_concept_strategy", "brief.md"), "brief")
	write(t, filepath.Join(root, "phase4_testing_iteration", "test_results.md"), "ok")

	reg, err := registry.Default(registry.Layout{Root: root})
	require.NoError(t, err)

	a := progress.NewAnalyzer(reg)
	got := a.Summarize()
	require.Len(t, got, domain.PhaseCount)

	assert.Equal(t, domain.ProgressSummary{Index: 1, Title: "Phase 1: Concept & Strategy", GuideHeading: "Phase 1: Concept & Strategy", HasProgress: true}, got[0])
	assert.Equal(t, guide.HeadingNotFound, got[1].GuideHeading)
	assert.False(t, got[1].HasProgress)
	assert.Equal(t, guide.HeadingMissing, got[2].GuideHeading)
	assert.True(t, got[3].HasProgress)
	assert.False(t, got[4].HasProgress)

	t.Run("Idempotent", func(t *testing.T) {
		assert.Equal(t, got, a.Summarize())
	})
}

func TestResumeIndex(t *testing.T) {
	mk := func(flags ...bool) []domain.ProgressSummary {
		out := make([]domain.ProgressSummary, len(flags))
		for i, f := range flags {
			out[i] = domain.ProgressSummary{Index: i + 1, HasProgress: f}
		}
		return out
	}

	assert.Equal(t, 1, progress.ResumeIndex(mk(false, false, false, false, false)))
	assert.Equal(t, 3, progress.ResumeIndex(mk(true, true, false, false, false)))
	assert.Equal(t, 5, progress.ResumeIndex(mk(true, false, false, true, false)))
	assert.Equal(t, 0, progress.ResumeIndex(mk(false, false, false, false, true)))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, progress.Percent(nil))
	assert.Equal(t, 40.0, progress.Percent([]domain.ProgressSummary{
		{Index: 1, HasProgress: true},
		{Index: 2},
		{Index: 3, HasProgress: true},
		{Index: 4},
		{Index: 5},
	}))
}
