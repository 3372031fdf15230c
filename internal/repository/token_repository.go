package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRepo keeps a revocation set of access-token jti values in Redis.
// Logout writes the presented token's jti with a TTL equal to the token's
// remaining lifetime, so entries evict themselves once the token would
// have expired anyway. With no Redis client configured the repo is a
// no-op and logout falls back to purely client-side token clearing.
type TokenRepo struct{ RDB *redis.Client }

func NewTokenRepo(rdb *redis.Client) *TokenRepo { return &TokenRepo{RDB: rdb} }

const revokedKeyPrefix = "revoked:"

// Revoke marks a token id as revoked until ttl elapses.
func (r *TokenRepo) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if r.RDB == nil || jti == "" || ttl <= 0 {
		return nil
	}
	return r.RDB.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

// IsRevoked reports whether a token id is in the revocation set. Redis
// errors are swallowed: an unreachable Redis must not lock every
// authenticated client out.
func (r *TokenRepo) IsRevoked(ctx context.Context, jti string) bool {
	if r.RDB == nil || jti == "" {
		return false
	}
	n, err := r.RDB.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false
	}
	return n > 0
}
