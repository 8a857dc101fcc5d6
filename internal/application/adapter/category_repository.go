// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/household-ledger/backend/internal/domain/entity"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// CreateCategoryData carries the validated fields for category creation.
type CreateCategoryData struct {
	Name   string
	TypeID int64
	UserID entity.UserID
}

// CategoryPatch carries the fields of a partial category update. Nil pointers
// mean "field omitted"; ClearCustomName distinguishes "clear the override"
// from "leave it alone".
type CategoryPatch struct {
	IsVisible       *bool
	CustomName      *string
	ClearCustomName bool
	DisplayOrder    *int
}

// IsEmpty reports whether the patch touches no field at all.
func (p CategoryPatch) IsEmpty() bool {
	return p.IsVisible == nil && p.CustomName == nil && !p.ClearCustomName && p.DisplayOrder == nil
}

// CategoryListOptions is the validated, normalized option set for listing
// a user's categories.
type CategoryListOptions struct {
	UserID        entity.UserID
	Pagination    valueobject.Pagination
	SortBy        valueobject.CategorySortField
	SortOrder     valueobject.SortDirection
	Type          *entity.CategoryType
	IncludeHidden bool
}

// CategoryListResult is a page of user-scoped category views plus the total count.
type CategoryListResult struct {
	Items []*entity.UserCategory
	Total int64
}

// CategoryRepository defines the interface for category persistence operations.
// "Not found" is a nil entity with a nil error; errors represent genuine I/O failure.
type CategoryRepository interface {
	// Create inserts the category row and the auto-membership row binding it
	// to the creating user in one atomic database transaction.
	Create(ctx context.Context, data CreateCategoryData) (*entity.Category, error)

	// FindByID retrieves a category by its id regardless of owner.
	FindByID(ctx context.Context, id entity.CategoryID) (*entity.Category, error)

	// FindByName retrieves a category visible to the user by exact name.
	FindByName(ctx context.Context, userID entity.UserID, name string) (*entity.Category, error)

	// FindByUserID retrieves all categories visible to the user.
	FindByUserID(ctx context.Context, userID entity.UserID) ([]*entity.Category, error)

	// FindByIDs retrieves the categories with the given ids that are visible
	// to the user (their own plus defaults), preserving no particular order.
	FindByIDs(ctx context.Context, userID entity.UserID, ids []entity.CategoryID) ([]*entity.Category, error)

	// FindAllWithPagination retrieves a page of the user's category views.
	FindAllWithPagination(ctx context.Context, options CategoryListOptions) (*CategoryListResult, error)

	// FindByIDWithUser retrieves the user-scoped view of one category.
	// Categories of other users yield nil, indistinguishable from absence.
	FindByIDWithUser(ctx context.Context, id entity.CategoryID, userID entity.UserID) (*entity.UserCategory, error)

	// Update applies a partial update to the user's membership row.
	Update(ctx context.Context, id entity.CategoryID, userID entity.UserID, patch CategoryPatch) (*entity.UserCategory, error)
}
