// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
)

// GetCategoryInput represents the input for fetching one category.
type GetCategoryInput struct {
	CategoryID entity.CategoryID
	UserID     entity.UserID
}

// GetCategoryOutput represents the output of fetching one category.
type GetCategoryOutput struct {
	Category *entity.UserCategory
}

// GetCategoryUseCase handles fetching a single user-scoped category view.
type GetCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewGetCategoryUseCase creates a new GetCategoryUseCase instance.
func NewGetCategoryUseCase(categoryRepo adapter.CategoryRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category fetch.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, input GetCategoryInput) (*GetCategoryOutput, error) {
	if !input.CategoryID.Valid() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryID,
			"category id must be a positive integer",
			domainerror.ErrInvalidCategoryID,
		)
	}

	// The repository scopes by user, so a category owned by another user
	// yields not-found rather than a permission leak.
	view, err := uc.categoryRepo.FindByIDWithUser(ctx, input.CategoryID, input.UserID)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeUnexpectedGetCategory,
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

	return &GetCategoryOutput{
		Category: view,
	}, nil
}
