// Package category contains category-related use cases.
package category

import (
	"context"
	"strings"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// UpdateCategoryInput represents the input for category update.
// Nil pointers mean "field omitted"; an empty or whitespace CustomName
// explicitly clears the override.
type UpdateCategoryInput struct {
	CategoryID   entity.CategoryID
	UserID       entity.UserID
	IsVisible    *bool
	CustomName   *string
	DisplayOrder *int
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.UserCategory
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	// Normalize the custom name: empty/whitespace means "clear the override"
	patch := adapter.CategoryPatch{
		IsVisible:    input.IsVisible,
		DisplayOrder: input.DisplayOrder,
	}
	if input.CustomName != nil {
		trimmed := strings.TrimSpace(*input.CustomName)
		if trimmed == "" {
			patch.ClearCustomName = true
		} else {
			name, err := valueobject.NewCategoryName(trimmed)
			if err != nil {
				return nil, domainerror.NewCategoryError(
					domainerror.ErrCodeInvalidCategoryName,
					"custom name must be at most 50 characters",
					domainerror.ErrInvalidCategoryName,
				)
			}
			normalized := name.String()
			patch.CustomName = &normalized
		}
	}

	// Reject an update that supplies no field at all
	if patch.IsEmpty() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidUpdateData,
			"at least one field must be provided",
			domainerror.ErrInvalidUpdateData,
		)
	}

	// Validate the display order
	if input.DisplayOrder != nil && *input.DisplayOrder < 0 {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidUpdateData,
			"display order must be a non-negative integer",
			domainerror.ErrInvalidUpdateData,
		)
	}

	// The category must exist for this user; cross-user access yields
	// not-found rather than a permission leak.
	view, err := uc.categoryRepo.FindByIDWithUser(ctx, input.CategoryID, input.UserID)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeUnexpectedUpdateCategory,
			"unexpected failure loading category",
			err,
		)
	}
	if view == nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	// Default categories are immutable for every user
	if view.IsDefault {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeDefaultCategoryForbidden,
			"default categories cannot be modified",
			domainerror.ErrDefaultCategoryUpdateForbidden,
		)
	}

	// Persist only the supplied fields
	updated, err := uc.categoryRepo.Update(ctx, input.CategoryID, input.UserID, patch)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeUnexpectedUpdateCategory,
			"unexpected failure updating category",
			err,
		)
	}

	return &UpdateCategoryOutput{
		Category: updated,
	}, nil
}
