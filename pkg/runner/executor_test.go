package runner_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderStub struct {
	records []domain.CompletionRecord
	err     error
}

func (r *recorderStub) Record(ctx context.Context, rec domain.CompletionRecord) error {
	r.records = append(r.records, rec)
	return r.err
}

func TestExecutor_RunPhase_Steps(t *testing.T) {
	reg := newProject(t)
	p, err := reg.Get(1)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	in := runner.NewScriptedSource(out, "", "")
	exec := runner.NewExecutor(in, out)

	require.NoError(t, exec.RunPhase(context.Background(), p))

	got := out.String()
	assert.Contains(t, got, "Starting Phase 1: Concept & Strategy...")
	assert.Contains(t, got, "Step 1: Define the problem")
	assert.Contains(t, got, "Step 1 of 2 complete ✅. Press Enter to continue...")
	assert.Contains(t, got, "Step 2 of 2 complete ✅. Press Enter to continue...")
	assert.Equal(t, 2, strings.Count(got, runner.StepInstruction))
	assert.Contains(t, got, "Phase 1: Concept & Strategy complete ✅")
	assert.Equal(t, 0, in.Remaining())

	// Steps appear in file order.
	assert.Less(t, strings.Index(got, "Define the problem"), strings.Index(got, "Describe the personas"))
}

func TestExecutor_RunPhase_MissingGuide(t *testing.T) {
	reg := newProject(t)
	p, _ := reg.Get(5)

	out := &bytes.Buffer{}
	in := runner.NewScriptedSource(out, "untouched")
	exec := runner.NewExecutor(in, out)

	require.NoError(t, exec.RunPhase(context.Background(), p))
	assert.Contains(t, out.String(), "Guide not found for Phase 5: Launch & Growth. Skipping...")
	assert.NotContains(t, out.String(), "complete ✅")
	assert.Equal(t, 1, in.Remaining(), "skipping must not consume input")
}

func TestExecutor_RunPhase_NoSteps(t *testing.T) {
	reg := newProject(t)
	p, _ := reg.Get(3)

	out := &bytes.Buffer{}
	exec := runner.NewExecutor(runner.NewScriptedSource(out), out)

	require.NoError(t, exec.RunPhase(context.Background(), p))
	assert.Contains(t, out.String(), "Phase 3: AI Execution complete ✅")
	assert.NotContains(t, out.String(), "Press Enter")
}

func TestExecutor_RunPhase_Exhausted(t *testing.T) {
	reg := newProject(t)
	p, _ := reg.Get(1)

	out := &bytes.Buffer{}
	exec := runner.NewExecutor(runner.NewScriptedSource(out, ""), out)

	err := exec.RunPhase(context.Background(), p)
	assert.ErrorIs(t, err, domain.ErrInputExhausted)
	assert.NotContains(t, out.String(), "Phase 1: Concept & Strategy complete ✅")
}

func TestExecutor_Traverse_RecordsAfterFullWalk(t *testing.T) {
	reg := newProject(t)
	at := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	out := &bytes.Buffer{}
	rec := &recorderStub{err: errors.New("disk full")}
	exec := runner.NewExecutor(runner.NewScriptedSource(out, "", "", "", ""), out,
		runner.WithRecorder(rec),
		runner.WithClock(func() time.Time { return at }),
	)

	require.NoError(t, exec.Traverse(context.Background(), reg.Phases()))
	assert.Contains(t, out.String(), "All phases executed successfully!")

	require.Len(t, rec.records, domain.PhaseCount, "recorder errors must not stop recording")
	for i, r := range rec.records {
		assert.Equal(t, i+1, r.PhaseIndex)
		assert.Equal(t, at, r.CompletedAt)
	}
}

func TestExecutor_Traverse_InterruptedDoesNotRecord(t *testing.T) {
	reg := newProject(t)

	out := &bytes.Buffer{}
	rec := &recorderStub{}
	exec := runner.NewExecutor(runner.NewScriptedSource(out, "", ""), out, runner.WithRecorder(rec))

	err := exec.Traverse(context.Background(), reg.Phases())
	assert.ErrorIs(t, err, domain.ErrInputExhausted)
	assert.Empty(t, rec.records)
	assert.NotContains(t, out.String(), "All phases executed successfully!")
}

func TestExecutor_Hooks(t *testing.T) {
	reg := newProject(t)

	var entered, acked int
	outcomes := map[int]string{}
	hooks := domain.LifecycleHooks{
		OnPhaseEnter: func(ctx context.Context, e *domain.PhaseEvent) { entered++ },
		OnPhaseLeave: func(ctx context.Context, e *domain.PhaseEvent) { outcomes[e.PhaseIndex] = e.Outcome },
		OnStepAck:    func(ctx context.Context, e *domain.StepEvent) { acked++ },
	}

	out := &bytes.Buffer{}
	exec := runner.NewExecutor(runner.NewScriptedSource(out, "", "", "", ""), out, runner.WithLifecycleHooks(hooks))
	require.NoError(t, exec.Traverse(context.Background(), reg.Phases()))

	assert.Equal(t, 4, entered)
	assert.Equal(t, 4, acked)
	assert.Equal(t, domain.OutcomeCompleted, outcomes[1])
	assert.Equal(t, domain.OutcomeCompleted, outcomes[3])
	assert.Equal(t, domain.OutcomeSkipped, outcomes[5])
}
