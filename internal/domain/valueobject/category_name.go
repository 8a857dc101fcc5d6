// Package valueobject contains domain value objects for the Household Ledger system.
package valueobject

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// CategoryName value object errors.
var (
	// ErrCategoryNameEmpty is returned when the name is empty after trimming.
	ErrCategoryNameEmpty = errors.New("category name must not be empty")

	// ErrCategoryNameTooLong is returned when the name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")
)

// CategoryName is a trimmed, non-empty category name of at most 50 characters.
type CategoryName struct {
	value string
}

// NewCategoryName trims and validates a raw category name.
func NewCategoryName(raw string) (CategoryName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CategoryName{}, ErrCategoryNameEmpty
	}
	if utf8.RuneCountInString(trimmed) > MaxCategoryNameLength {
		return CategoryName{}, ErrCategoryNameTooLong
	}
	return CategoryName{value: trimmed}, nil
}

// String returns the normalized name.
func (n CategoryName) String() string {
	return n.value
}
