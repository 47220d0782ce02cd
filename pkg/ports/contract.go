package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/appguide/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunProgressLogContract runs a suite of tests to verify that a ProgressLog implementation
// adheres to the defined interface contract. The log must start empty.
func RunProgressLogContract(t *testing.T, log ProgressLog) {
	ctx := context.Background()
	base := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	t.Run("Empty", func(t *testing.T) {
		records, err := log.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Record and List", func(t *testing.T) {
		first := domain.CompletionRecord{PhaseIndex: 1, Title: "Phase 1: Concept & Strategy", CompletedAt: base}
		second := domain.CompletionRecord{PhaseIndex: 2, Title: "Phase 2: Development Planning", CompletedAt: base.Add(time.Minute)}

		require.NoError(t, log.Record(ctx, first))
		require.NoError(t, log.Record(ctx, second))

		records, err := log.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, first.Title, records[0].Title)
		assert.Equal(t, second.Title, records[1].Title)
		assert.True(t, first.CompletedAt.Equal(records[0].CompletedAt), "timestamps should survive a round trip")
		assert.True(t, second.CompletedAt.Equal(records[1].CompletedAt))
	})
}
