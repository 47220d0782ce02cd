package appguide_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/appguide"
	"github.com/aretw0/appguide/pkg/adapters/memory"
	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGuides(t *testing.T, root, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	files := map[string]string{
		"phase_1_concept_strategy.md":  "# Concept\nStep 1: Problem\n",
		"phase_2_dev_planning.md":      "# Planning\nStep 1: Screens\nStep 2: Tasks\n",
		"phase_3_ai_execution.md":      "# Execution\n",
		"phase_4_testing_iteration.md": "# Testing\n",
		"phase_5_launch_growth.md":     "# Launch\nStep 1: Ship\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

func newGuide(t *testing.T, opts ...appguide.Option) (*appguide.Guide, *bytes.Buffer, string) {
	t.Helper()
	root := t.TempDir()
	writeGuides(t, root, filepath.Join(root, "copilot_brain"))
	out := &bytes.Buffer{}
	g, err := appguide.New(root, append([]appguide.Option{appguide.WithOutput(out)}, opts...)...)
	require.NoError(t, err)
	return g, out, root
}

func within(t *testing.T, fn func() error) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- fn() }()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("session did not finish")
		return nil
	}
}

func TestNew_RequiresRoot(t *testing.T) {
	_, err := appguide.New("")
	assert.Error(t, err)
}

func TestGuide_Summarize(t *testing.T) {
	g, _, root := newGuide(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "phase2_development_planning", "screen_flows"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "phase2_development_planning", "screen_flows", "home.mmd"), []byte("graph TD"), 0644))

	sums := g.Summarize()
	require.Len(t, sums, domain.PhaseCount)
	assert.Equal(t, "Concept", sums[0].GuideHeading)
	assert.False(t, sums[0].HasProgress)
	assert.True(t, sums[1].HasProgress)
}

func TestGuide_Preview(t *testing.T) {
	g, _, _ := newGuide(t)

	text, err := g.Preview(2, 0)
	require.NoError(t, err)
	assert.Equal(t, "# Planning\nStep 1: Screens\nStep 2: Tasks", text)

	_, err = g.Preview(9, 0)
	assert.ErrorIs(t, err, domain.ErrPhaseNotFound)
}

func TestGuide_CustomGuideDir(t *testing.T) {
	root := t.TempDir()
	writeGuides(t, root, filepath.Join(root, "guides"))

	g, err := appguide.New(root, appguide.WithGuideDir("guides"))
	require.NoError(t, err)
	assert.Equal(t, "Launch", g.Summarize()[4].GuideHeading)
}

func TestGuide_ChatScripted(t *testing.T) {
	g, out, _ := newGuide(t)

	err := within(t, func() error { return g.Chat(context.Background(), []string{"2", "3"}) })
	require.NoError(t, err)
	assert.Contains(t, out.String(), "- Phase 3: AI Execution — Execution [no progress]")
	assert.Contains(t, out.String(), runner.Farewell)
}

func TestGuide_ChatEmptyScript(t *testing.T) {
	g, out, _ := newGuide(t)

	err := within(t, func() error { return g.Chat(context.Background(), []string{}) })
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestGuide_ChatInteractive(t *testing.T) {
	g, out, _ := newGuide(t, appguide.WithInput(strings.NewReader("x\n3\n")))

	err := within(t, func() error { return g.Chat(context.Background(), nil) })
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out.String(), runner.InvalidChoice))
	assert.Contains(t, out.String(), runner.Farewell)
}

func TestGuide_ChatTwiceSharesInput(t *testing.T) {
	g, out, _ := newGuide(t, appguide.WithInput(strings.NewReader("3\n3\n")))
	assert.Same(t, g.Input(), g.Input())

	for i := 0; i < 2; i++ {
		require.NoError(t, within(t, func() error { return g.Chat(context.Background(), nil) }))
	}
	assert.Equal(t, 2, strings.Count(out.String(), runner.Farewell))
}

func TestGuide_InitiateRecords(t *testing.T) {
	rec := memory.New()
	at := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	g, out, _ := newGuide(t,
		appguide.WithInput(strings.NewReader("\n\n\n\n")),
		appguide.WithRecorder(rec),
		appguide.WithClock(func() time.Time { return at }),
	)

	require.NoError(t, within(t, func() error { return g.Initiate(context.Background()) }))
	assert.Contains(t, out.String(), "All phases executed successfully!")

	list, err := rec.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, domain.PhaseCount)
	assert.Equal(t, "Phase 1: Concept & Strategy", list[0].Title)
	assert.Equal(t, at, list[4].CompletedAt)
}

func TestGuide_InitiateStopsAtEOF(t *testing.T) {
	rec := memory.New()
	g, out, _ := newGuide(t, appguide.WithInput(strings.NewReader("\n")), appguide.WithRecorder(rec))

	require.NoError(t, within(t, func() error { return g.Initiate(context.Background()) }))
	assert.Contains(t, out.String(), "Step 1 of 2 complete ✅")
	assert.NotContains(t, out.String(), "All phases executed successfully!")

	list, _ := rec.List(context.Background())
	assert.Empty(t, list)
}
