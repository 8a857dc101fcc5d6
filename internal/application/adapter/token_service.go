// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// TokenClaims represents the claims contained in an access token.
type TokenClaims struct {
	UserID    entity.UserID
	Email     string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Identifier derives the stable identifier used to blacklist the token:
// the token id when present, subject plus issued-at otherwise.
func (c *TokenClaims) Identifier() string {
	if c.TokenID != "" {
		return c.TokenID
	}
	return fmt.Sprintf("%d:%d", c.UserID.Int64(), c.IssuedAt.Unix())
}

// TokenService defines the interface for access token operations.
type TokenService interface {
	// Generate issues a signed access token for the user.
	Generate(ctx context.Context, userID entity.UserID, email string) (string, error)

	// Validate parses and verifies a token, returning its claims.
	// Invalid or expired tokens yield an auth domain error.
	Validate(ctx context.Context, token string) (*TokenClaims, error)
}
