package column

import (
	"bytes"
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sortdist/blobstore"
	"github.com/hupe1980/sortdist/distance"
	"github.com/hupe1980/sortdist/resource"
)

func writeInput(t *testing.T, store blobstore.BlobStore, name string, c Compression, data []byte) {
	t.Helper()

	var buf bytes.Buffer
	w, err := Compress(&buf, c)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.NoError(t, blobstore.Put(context.Background(), store, name, buf.Bytes()))
}

func TestLoad_Local(t *testing.T) {
	store := blobstore.NewLocalStore(t.TempDir())

	data := []byte("3 4\n4 3\n2 5\n1 3\n3 9\n3 3\n")
	writeInput(t, store, "input.txt", CompressionNone, data)

	cols, stats, err := Load(context.Background(), store, "input.txt", LoadOptions{})
	require.NoError(t, err)
	assert.True(t, stats.Mapped)
	assert.Equal(t, 6, stats.Records)
	assert.Equal(t, int64(len(data)), stats.Bytes)
	assert.Equal(t, []int64{3, 4, 2, 1, 3, 3}, cols.Left)
	assert.Equal(t, []int64{4, 3, 5, 3, 9, 3}, cols.Right)
}

func TestLoad_Compressed(t *testing.T) {
	store := blobstore.NewMemoryStore()

	var plain bytes.Buffer
	require.NoError(t, Generate(&plain, 500, distance.DefaultDomain, rand.New(rand.NewPCG(1, 2))))

	want, err := ParseBytes(plain.Bytes())
	require.NoError(t, err)

	for _, c := range []Compression{CompressionNone, CompressionZstd, CompressionLZ4, CompressionGzip} {
		t.Run(c.String(), func(t *testing.T) {
			name := "input_500.txt" + c.Ext()
			writeInput(t, store, name, c, plain.Bytes())

			cols, stats, err := Load(context.Background(), store, name, LoadOptions{})
			require.NoError(t, err)
			assert.Equal(t, c == CompressionNone, stats.Mapped)
			assert.Equal(t, c, stats.Compression)
			assert.Equal(t, 500, stats.Records)
			assert.Equal(t, want, cols)
		})
	}
}

func TestLoad_Throttled(t *testing.T) {
	store := blobstore.NewLocalStore(t.TempDir())
	writeInput(t, store, "input.txt", CompressionNone, []byte("10000 99999\n"))

	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})
	cols, stats, err := Load(context.Background(), store, "input.txt", LoadOptions{Controller: rc})
	require.NoError(t, err)
	assert.False(t, stats.Mapped)
	assert.Equal(t, 1, cols.Len())
}

func TestLoad_Errors(t *testing.T) {
	store := blobstore.NewMemoryStore()

	t.Run("NotFound", func(t *testing.T) {
		_, _, err := Load(context.Background(), store, "missing.txt", LoadOptions{})
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("Malformed", func(t *testing.T) {
		writeInput(t, store, "bad.txt", CompressionNone, []byte("1 2\nbad\n"))
		_, _, err := Load(context.Background(), store, "bad.txt", LoadOptions{})
		assert.ErrorIs(t, err, ErrMalformed)
		assert.Contains(t, err.Error(), "bad.txt")
	})

	t.Run("CorruptCompressed", func(t *testing.T) {
		require.NoError(t, blobstore.Put(context.Background(), store, "bad.txt.gz", []byte("not gzip")))
		_, _, err := Load(context.Background(), store, "bad.txt.gz", LoadOptions{})
		assert.Error(t, err)
	})

	t.Run("Canceled", func(t *testing.T) {
		writeInput(t, store, "ok.txt", CompressionNone, []byte("1 2\n"))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := Load(ctx, store, "ok.txt", LoadOptions{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
