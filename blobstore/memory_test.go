package blobstore

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, Put(ctx, store, "b.txt", []byte("hello world")))
	require.NoError(t, Put(ctx, store, "a.txt", []byte("x")))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)

	blob, err := store.Open(ctx, "b.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(11), blob.Size())

	buf := make([]byte, 5)
	n, err := blob.ReadAt(ctx, buf, 6)
	require.NoError(t, err)
	assert.Equal(t, "world", string(buf[:n]))

	n, err = blob.ReadAt(ctx, make([]byte, 10), 6)
	assert.Equal(t, 5, n)
	assert.Equal(t, io.EOF, err)

	_, err = store.Open(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_List(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	for _, name := range []string{"input_1m.txt", "other.txt", "input_1k.txt"} {
		require.NoError(t, Put(ctx, store, name, []byte("1 2\n")))
	}

	names, err := store.List(ctx, "input_")
	require.NoError(t, err)
	assert.Equal(t, []string{"input_1k.txt", "input_1m.txt"}, names)
}

func TestMemoryStore_Mappable(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, Put(ctx, store, "in.txt", []byte("10000 99999\n")))

	blob, err := store.Open(ctx, "in.txt")
	require.NoError(t, err)
	defer blob.Close()

	m, ok := blob.(Mappable)
	require.True(t, ok)
	data, err := m.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "10000 99999\n", string(data))
}

func TestMemoryStore_WriterLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	w, err := store.Create(ctx, "x")
	require.NoError(t, err)
	_, err = w.Write([]byte("data"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = w.Write([]byte("more"))
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.ErrorIs(t, w.Close(), os.ErrClosed)

	blob, err := store.Open(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, int64(4), blob.Size())

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = store.Open(canceled, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStore_Abort(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	w, err := store.Create(ctx, "x")
	require.NoError(t, err)
	_, _ = w.Write([]byte("data"))
	require.NoError(t, w.Abort())
	assert.ErrorIs(t, w.Close(), os.ErrClosed)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestNewReader(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, Put(ctx, store, "in.txt", []byte("1 2\n3 4\n")))

	blob, err := store.Open(ctx, "in.txt")
	require.NoError(t, err)

	r, err := NewReader(ctx, blob)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "1 2\n3 4\n", string(data))
}
