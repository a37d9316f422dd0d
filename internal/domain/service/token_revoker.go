package service

import (
	"context"
	"time"
)

// TokenRevoker keeps the IDs of tokens that were logged out before they expired.
type TokenRevoker interface {
	// Revoke marks the token ID as revoked until expiresAt.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
