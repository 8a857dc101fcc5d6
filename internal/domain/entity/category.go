// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"
)

// CategoryType represents the type of category (income or expense).
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Numeric category type identifiers as stored in the category_types table.
const (
	CategoryTypeIDIncome  int64 = 1
	CategoryTypeIDExpense int64 = 2
)

// CategoryTypeFromID maps a numeric type id to a CategoryType.
// The boolean result is false for unknown ids.
func CategoryTypeFromID(typeID int64) (CategoryType, bool) {
	switch typeID {
	case CategoryTypeIDIncome:
		return CategoryTypeIncome, true
	case CategoryTypeIDExpense:
		return CategoryTypeExpense, true
	default:
		return "", false
	}
}

// TypeID maps the CategoryType back to its numeric identifier.
func (t CategoryType) TypeID() int64 {
	if t == CategoryTypeIncome {
		return CategoryTypeIDIncome
	}
	return CategoryTypeIDExpense
}

// IsValid reports whether the type is income or expense.
func (t CategoryType) IsValid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category represents a spending/income category in the Household Ledger system.
// Default categories are system-seeded: they have no owner and no user may
// rename, edit or delete them. Custom categories belong to exactly one user.
type Category struct {
	ID          CategoryID
	Name        string
	Type        CategoryType
	IsDefault   bool
	OwnerUserID *UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory creates a new custom Category owned by the given user.
func NewCategory(name string, categoryType CategoryType, ownerUserID UserID) *Category {
	now := time.Now().UTC()

	return &Category{
		Name:        name,
		Type:        categoryType,
		IsDefault:   false,
		OwnerUserID: &ownerUserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsOwnedBy reports whether the category is a custom category of the user.
func (c *Category) IsOwnedBy(userID UserID) bool {
	return c.OwnerUserID != nil && *c.OwnerUserID == userID
}

// IsVisibleTo reports whether the category can be used by the user:
// default categories are global, custom ones only for their owner.
func (c *Category) IsVisibleTo(userID UserID) bool {
	return c.IsDefault || c.IsOwnedBy(userID)
}

// CanBeEditedBy reports whether the user may modify the category.
// Default categories are immutable for everyone.
func (c *Category) CanBeEditedBy(userID UserID) bool {
	return !c.IsDefault && c.IsOwnedBy(userID)
}

// UserCategory is the per-user view of a category: the shared category row
// joined with the user's membership settings.
type UserCategory struct {
	CategoryID   CategoryID
	UserID       UserID
	Name         string
	CustomName   *string
	Type         CategoryType
	IsDefault    bool
	IsVisible    bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName returns the user's custom name when set, the shared name otherwise.
func (uc *UserCategory) DisplayName() string {
	if uc.CustomName != nil && *uc.CustomName != "" {
		return *uc.CustomName
	}
	return uc.Name
}
