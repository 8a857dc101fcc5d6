// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/household-ledger/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
// "Not found" is a nil entity with a nil error.
type UserRepository interface {
	// Create inserts a new user, returning the persisted entity with its id.
	Create(ctx context.Context, user *entity.User) (*entity.User, error)

	// FindByEmail retrieves a user by their normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
