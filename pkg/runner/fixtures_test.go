package runner_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/appguide/pkg/progress"
	"github.com/aretw0/appguide/pkg/registry"
	"github.com/aretw0/appguide/pkg/runner"
	"github.com/stretchr/testify/require"
)

// guides maps guide file names to contents for a test project.
var guides = map[string]string{
	"phase_1_concept_strategy.md":  "# Phase 1: Concept & Strategy\nStep 1: Define the problem\nStep 2: Describe the personas\n",
	"phase_2_dev_planning.md":      "# Phase 2: Development Planning\nStep 1: Map the screens\n",
	"phase_3_ai_execution.md":      "# Phase 3: AI Execution\nNo steps yet.\n",
	"phase_4_testing_iteration.md": "# Phase 4: Testing & Iteration\nStep 1: Run the suites\n",
}

// newProject writes guides (phase 5 deliberately missing) and returns the registry.
func newProject(t *testing.T) *registry.Registry {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, registry.DefaultGuideDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	for name, content := range guides {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	reg, err := registry.Default(registry.Layout{Root: root})
	require.NoError(t, err)
	return reg
}

type session struct {
	out    *bytes.Buffer
	in     *runner.ScriptedSource
	driver *runner.Driver
}

func newSession(t *testing.T, reg *registry.Registry, opts []runner.Option, tokens ...string) *session {
	t.Helper()
	out := &bytes.Buffer{}
	in := runner.NewScriptedSource(out, tokens...)
	exec := runner.NewExecutor(in, out, opts...)
	drv := runner.NewDriver(in, out, progress.NewAnalyzer(reg), reg, exec, opts...)
	return &session{out: out, in: in, driver: drv}
}
