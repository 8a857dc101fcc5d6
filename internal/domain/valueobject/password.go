// Package valueobject contains domain value objects for the Household Ledger system.
package valueobject

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinPasswordLength is the minimum required password length.
const MinPasswordLength = 12

// Password value object errors.
var (
	// ErrPasswordTooShort is returned when the password has fewer than 12 characters.
	ErrPasswordTooShort = errors.New("password must be at least 12 characters long")

	// ErrPasswordNoSymbol is returned when the password has no non-alphanumeric symbol.
	ErrPasswordNoSymbol = errors.New("password must contain at least one symbol")
)

// Password is a validated plaintext password. It is transient: it exists
// only between input validation and hashing, and is never persisted.
type Password struct {
	value string
}

// NewPassword trims and validates a raw password against the policy:
// at least 12 characters, at least one non-alphanumeric symbol.
func NewPassword(raw string) (Password, error) {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) < MinPasswordLength {
		return Password{}, ErrPasswordTooShort
	}
	if !containsSymbol(trimmed) {
		return Password{}, ErrPasswordNoSymbol
	}
	return Password{value: trimmed}, nil
}

// String returns the plaintext password for hashing.
func (p Password) String() string {
	return p.value
}

func containsSymbol(value string) bool {
	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
