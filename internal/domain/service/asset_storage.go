package service

import "context"

// AssetStorage is the external asset host.
type AssetStorage interface {
	// Upload stores data under key and returns its public URL.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error

	// Enabled reports whether a real asset host is configured.
	Enabled() bool
}
