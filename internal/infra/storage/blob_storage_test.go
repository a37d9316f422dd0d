package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage, err := NewBlobStorage(bucket, "https://cdn.example.com/assets/")
	require.NoError(t, err)
	assert.True(t, storage.Enabled())

	url, err := storage.Upload(ctx, "agadev/123-photo.jpg", []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/assets/agadev/123-photo.jpg", url)

	data, err := bucket.ReadAll(ctx, "agadev/123-photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	attrs, err := bucket.Attributes(ctx, "agadev/123-photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)

	require.NoError(t, storage.Delete(ctx, "agadev/123-photo.jpg"))
	exists, err := bucket.Exists(ctx, "agadev/123-photo.jpg")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting again is not an error.
	assert.NoError(t, storage.Delete(ctx, "agadev/123-photo.jpg"))
}

func TestNewBlobStorage_RequiresPublicBaseURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	_, err := NewBlobStorage(bucket, "  ")
	assert.Error(t, err)
}

func TestPlaceholderStorage(t *testing.T) {
	storage := placeholderStorage{}

	url, err := storage.Upload(context.Background(), "any", []byte("x"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, PlaceholderURL, url)
	assert.NoError(t, storage.Delete(context.Background(), "any"))
	assert.False(t, storage.Enabled())
}

func TestRedactBucketURL(t *testing.T) {
	assert.Equal(t, "s3://bucket", redactBucketURL("s3://bucket?region=eu-west-3&awssdk=v2"))
	assert.Equal(t, "file:///tmp/assets", redactBucketURL("file:///tmp/assets"))
}
