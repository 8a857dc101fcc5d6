// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"
)

// MaxUserNameLength is the maximum allowed length for user names.
const MaxUserNameLength = 100

// User represents a registered user in the Household Ledger system.
// Identity equality is id-based, not structural.
type User struct {
	ID           UserID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User. Email and name are assumed to be normalized
// and validated by the registration use case.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()

	return &User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Equal reports identity equality: two users are the same iff ids match.
func (u *User) Equal(other *User) bool {
	return other != nil && u.ID == other.ID
}

// NormalizeEmail lower-cases and trims an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
