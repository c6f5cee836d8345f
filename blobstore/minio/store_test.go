package minio

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sortdist/blobstore"
)

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{Bucket: "b"})
	require.Error(t, err)

	_, err = New(Config{Endpoint: "localhost:9000"})
	require.Error(t, err)

	store, err := New(Config{Endpoint: "localhost:9000", Bucket: "b", Prefix: "inputs/"})
	require.NoError(t, err)
	assert.Equal(t, "inputs/input_1k.txt", store.key("input_1k.txt"))
}

// TestMinioStore_Integration requires a running MinIO instance.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("Skipping MinIO integration test: MINIO_ENDPOINT not set")
	}

	bucket := "test-sortdist"
	store, err := New(Config{
		Endpoint:  endpoint,
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    bucket,
		Prefix:    "test-prefix/",
	})
	require.NoError(t, err)

	ctx := context.Background()
	if _, err := store.client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := store.client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, store.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	data := []byte("12345 67890\n54321 09876\n")
	require.NoError(t, blobstore.Put(ctx, store, "input.txt", data))
	defer func() { _ = store.Delete(ctx, "input.txt") }()

	blob, err := store.Open(ctx, "input.txt")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 5)
	n, err := blob.ReadAt(ctx, buf, 6)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "67890", string(buf))

	rc, err := blobstore.NewReader(ctx, blob)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, data, got)
	require.NoError(t, blob.Close())

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "input.txt")

	w, err := store.Create(ctx, "aborted.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("partial"))
	require.NoError(t, err)
	require.NoError(t, w.Abort())

	_, err = store.Open(ctx, "aborted.txt")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	require.NoError(t, store.Delete(ctx, "input.txt"))
	_, err = store.Open(ctx, "input.txt")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
