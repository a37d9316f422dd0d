// Package storage implements the asset host on top of gocloud.dev/blob buckets.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"agadev/config"
	"agadev/internal/domain/service"
	"agadev/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes accepted in assets.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// PlaceholderURL is stored for uploads when no asset host is configured.
const PlaceholderURL = "#"

// Params defines the parameters required for the asset storage
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

// NewAssetStorage opens the configured bucket, or returns a placeholder store
// that performs no remote call when assets.bucketUrl is empty.
func NewAssetStorage(params Params) (service.AssetStorage, error) {
	cfg := params.Config.Assets
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Warn("Asset host not configured, uploads will be recorded with a placeholder URL")

		return placeholderStorage{}, nil
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open asset bucket %s", redactBucketURL(cfg.BucketURL))
	}

	storage, err := NewBlobStorage(bucket, cfg.PublicBaseURL)
	if err != nil {
		_ = bucket.Close()

		return nil, err
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})
	params.Logger.Info("Asset host configured", slog.String("bucket", redactBucketURL(cfg.BucketURL)))

	return storage, nil
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage wraps an opened bucket. Object URLs are publicBaseURL + "/" + key.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) (service.AssetStorage, error) {
	base := strings.TrimRight(strings.TrimSpace(publicBaseURL), "/")
	if base == "" {
		return nil, errors.New("assets.publicBaseUrl must be set when a bucket is configured")
	}

	return &blobStorage{bucket: bucket, publicBaseURL: base}, nil
}

// Upload writes data under key and returns the public URL.
func (s *blobStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "write asset %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the object. A missing object counts as deleted.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete asset %s", key)
	}

	return nil
}

func (s *blobStorage) Enabled() bool {
	return true
}

type placeholderStorage struct{}

func (placeholderStorage) Upload(context.Context, string, []byte, string) (string, error) {
	return PlaceholderURL, nil
}

func (placeholderStorage) Delete(context.Context, string) error {
	return nil
}

func (placeholderStorage) Enabled() bool {
	return false
}

// redactBucketURL drops query parameters, which may carry credentials.
func redactBucketURL(u string) string {
	if i := strings.IndexByte(u, '?'); i >= 0 {
		return u[:i]
	}

	return u
}
