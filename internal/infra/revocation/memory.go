package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryRevoker keeps revoked token IDs in process memory.
// Entries are dropped once their token would have expired anyway.
type MemoryRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemoryRevoker creates an empty in-memory revocation set. A nil clock means time.Now.
func NewMemoryRevoker(now func() time.Time) *MemoryRevoker {
	if now == nil {
		now = time.Now
	}

	return &MemoryRevoker{
		revoked: make(map[string]time.Time),
		now:     now,
	}
}

// Revoke marks the token ID as revoked until expiresAt.
func (r *MemoryRevoker) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.purgeLocked(now)
	if expiresAt.After(now) {
		r.revoked[tokenID] = expiresAt
	}

	return nil
}

// IsRevoked reports whether the token ID was revoked and has not expired yet.
func (r *MemoryRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiresAt, ok := r.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !expiresAt.After(r.now()) {
		delete(r.revoked, tokenID)

		return false, nil
	}

	return true, nil
}

// Len returns the number of live entries.
func (r *MemoryRevoker) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purgeLocked(r.now())

	return len(r.revoked)
}

func (r *MemoryRevoker) purgeLocked(now time.Time) {
	for id, expiresAt := range r.revoked {
		if !expiresAt.After(now) {
			delete(r.revoked, id)
		}
	}
}
