package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sortdist"
	"github.com/hupe1980/sortdist/blobstore"
	"github.com/hupe1980/sortdist/distance"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s, err := Open(filepath.Join(t.TempDir(), "history.db"), WithNow(func() time.Time {
		at = at.Add(time.Second)
		return at
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	for range 3 {
		s, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, s.Close())
	}
}

func TestStore_RecordAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, sortdist.Result{
		RunID: "run-1", Name: "input_1k.txt", Records: 1000, Distance: 42,
		Kernel: distance.KernelCounting, Elapsed: 3 * time.Millisecond,
	}))
	require.NoError(t, s.Record(ctx, sortdist.Result{
		RunID: "run-1", Name: "input_10k.txt", Kernel: distance.KernelCounting,
		Err: errors.New("input input_10k.txt: input not found"),
	}))
	require.NoError(t, s.Record(ctx, sortdist.Result{
		RunID: "run-2", Name: "input_1k.txt", Records: 1000, Distance: 42,
		Kernel: distance.KernelSparse, Elapsed: time.Millisecond,
	}))

	all, err := s.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Newest first.
	assert.Equal(t, "run-2", all[0].RunID)
	assert.Equal(t, "sparse", all[0].Kernel)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 8, 0, time.UTC), all[0].RecordedAt)

	failed := all[1]
	assert.Equal(t, "input_10k.txt", failed.Input)
	assert.False(t, failed.OK())
	assert.Contains(t, failed.Error, "not found")

	first := all[2]
	assert.True(t, first.OK())
	assert.Equal(t, int64(42), first.Distance)
	assert.Equal(t, 1000, first.Records)
	assert.Equal(t, 3*time.Millisecond, first.Elapsed)

	byRun, err := s.List(ctx, Filter{RunID: "run-1"})
	require.NoError(t, err)
	assert.Len(t, byRun, 2)

	byInput, err := s.List(ctx, Filter{Input: "input_1k.txt", Limit: 1})
	require.NoError(t, err)
	require.Len(t, byInput, 1)
	assert.Equal(t, "run-2", byInput[0].RunID)
}

func TestStore_WithRunner(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	store := blobstore.NewMemoryStore()
	require.NoError(t, blobstore.Put(ctx, store, "input.txt", []byte("10000 10001\n10002 10000\n")))

	runner, err := sortdist.New(store, sortdist.WithHistory(s))
	require.NoError(t, err)
	require.Error(t, runner.Run(ctx, []string{"input.txt", "missing.txt"}, nil))

	entries, err := s.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entries[0].RunID, entries[1].RunID)

	byInput, err := s.List(ctx, Filter{Input: "input.txt"})
	require.NoError(t, err)
	require.Len(t, byInput, 1)
	assert.Equal(t, int64(1), byInput[0].Distance)
	assert.Equal(t, 2, byInput[0].Records)
}
