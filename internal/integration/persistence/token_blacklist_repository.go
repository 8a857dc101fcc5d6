// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/household-ledger/backend/internal/application/adapter"
)

const blacklistKeyPrefix = "token:blacklist:"

// tokenBlacklistRepository implements the adapter.TokenBlacklistRepository
// interface on Redis. Keys expire with the token they revoke, so the set
// cleans itself up.
type tokenBlacklistRepository struct {
	client *redis.Client
}

// NewTokenBlacklistRepository creates a new token blacklist repository instance.
func NewTokenBlacklistRepository(client *redis.Client) adapter.TokenBlacklistRepository {
	return &tokenBlacklistRepository{
		client: client,
	}
}

// Add stores the entry, keeping it until the token's natural expiry.
func (r *tokenBlacklistRepository) Add(ctx context.Context, entry adapter.BlacklistEntry) error {
	ttl := time.Until(entry.ExpiresAt)
	if ttl <= 0 {
		// Already expired tokens reject themselves; nothing to store.
		return nil
	}
	return r.client.Set(ctx, blacklistKeyPrefix+entry.TokenIdentifier, entry.UserID.Int64(), ttl).Err()
}

// Exists reports whether the identifier has been blacklisted.
func (r *tokenBlacklistRepository) Exists(ctx context.Context, tokenIdentifier string) (bool, error) {
	err := r.client.Get(ctx, blacklistKeyPrefix+tokenIdentifier).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
