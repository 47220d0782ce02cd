package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/appguide/pkg/adapters/redis"
	"github.com/aretw0/appguide/pkg/domain"
	"github.com/aretw0/appguide/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecorder(t *testing.T, opts ...redis.Option) (*redis.Recorder, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisRecorder_Contract(t *testing.T) {
	rec, _ := newRecorder(t)
	ports.RunProgressLogContract(t, rec)
}

func TestRedisRecorder_PrefixAndReset(t *testing.T) {
	rec, mr := newRecorder(t, redis.WithPrefix("team:"))
	ctx := context.Background()

	err := rec.Record(ctx, domain.CompletionRecord{
		PhaseIndex:  4,
		Title:       "Phase 4: Testing & Iteration",
		CompletedAt: time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	items, err := mr.List("team:progress")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0], `"phase_index":4`)

	require.NoError(t, rec.Reset(ctx))
	assert.False(t, mr.Exists("team:progress"))
}

func TestRedisRecorder_Unavailable(t *testing.T) {
	rec, mr := newRecorder(t)
	mr.Close()

	err := rec.Record(context.Background(), domain.CompletionRecord{Title: "x"})
	assert.Error(t, err)
}
