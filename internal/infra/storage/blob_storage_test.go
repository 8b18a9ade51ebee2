package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) *blobStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store, ok := NewBlobStorage(bucket, "http://localhost:8080/", slog.Default()).(*blobStorage)
	require.True(t, ok)

	return store
}

func TestBlobStorage_UploadAndOpen(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.Upload(ctx, "products/p1/cover.png", "image/png", strings.NewReader("png-bytes")))

	reader, contentType, err := store.Open(ctx, "products/p1/cover.png")
	require.NoError(t, err)
	defer reader.Close()

	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", contentType)
}

func TestBlobStorage_OpenMissing(t *testing.T) {
	store := newTestStorage(t)

	_, _, err := store.Open(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestBlobStorage_SignedURLFallsBackToDownloadRoute(t *testing.T) {
	store := newTestStorage(t)

	got, err := store.SignedURL(context.Background(), "products/p 1/cover.png", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/v1/files/products/p%201/cover.png", got)
}

func TestBlobStorage_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.Upload(ctx, "tickets/a.txt", "text/plain", strings.NewReader("x")))
	require.NoError(t, store.Delete(ctx, "tickets/a.txt"))
	require.NoError(t, store.Delete(ctx, "tickets/a.txt"))

	_, _, err := store.Open(ctx, "tickets/a.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestRedactBucketURL(t *testing.T) {
	assert.Equal(t, "file:///tmp/uploads", redactBucketURL("file:///tmp/uploads?create_dir=true"))
}
