// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// BlacklistEntry is a revoked token identifier with its natural expiry.
type BlacklistEntry struct {
	TokenIdentifier string
	UserID          entity.UserID
	ExpiresAt       time.Time
}

// TokenBlacklistRepository stores revoked token identifiers until their
// tokens would have expired anyway, so logout takes effect immediately.
type TokenBlacklistRepository interface {
	// Add stores the entry, keeping it at least until ExpiresAt.
	Add(ctx context.Context, entry BlacklistEntry) error

	// Exists reports whether the identifier has been blacklisted.
	Exists(ctx context.Context, tokenIdentifier string) (bool, error)
}
