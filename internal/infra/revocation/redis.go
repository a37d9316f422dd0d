package revocation

import (
	"context"
	"time"

	"agadev/internal/errors"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "agadev:"

// RedisRevoker stores revoked token IDs as keys expiring with the token.
type RedisRevoker struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisRevoker connects to the redis URL (redis://[:password@]host:port/db).
func NewRedisRevoker(url, prefix string) (*RedisRevoker, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}

	return newRedisRevoker(redis.NewClient(opts), prefix), nil
}

func newRedisRevoker(client *redis.Client, prefix string) *RedisRevoker {
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &RedisRevoker{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

// Revoke marks the token ID as revoked until expiresAt.
func (r *RedisRevoker) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	if err := r.client.Set(ctx, r.key(tokenID), "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set revoked token")
	}

	return nil
}

// IsRevoked reports whether the token ID is still in the revocation set.
func (r *RedisRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(tokenID)).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis exists revoked token")
	}

	return n > 0, nil
}

// Ping checks the connection.
func (r *RedisRevoker) Ping(ctx context.Context) error {
	return errors.Wrap(r.client.Ping(ctx).Err(), "redis ping")
}

// Close releases the connection pool.
func (r *RedisRevoker) Close() error {
	return r.client.Close()
}

func (r *RedisRevoker) key(tokenID string) string {
	return r.prefix + "revoked:" + tokenID
}
