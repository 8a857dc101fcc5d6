// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name   string
	TypeID int64
	UserID entity.UserID
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	// Trim and validate the name
	name, err := valueobject.NewCategoryName(input.Name)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryName,
			"category name must be a non-empty string of at most 50 characters",
			domainerror.ErrInvalidCategoryName,
		)
	}

	// Validate the type id
	if input.TypeID <= 0 {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidTypeID,
			"type id must be a positive integer",
			domainerror.ErrInvalidTypeID,
		)
	}

	// Check name uniqueness among the user's visible categories
	existing, err := uc.categoryRepo.FindByName(ctx, input.UserID, name.String())
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeUnexpectedCreateCategory,
			"unexpected failure checking category name uniqueness",
			err,
		)
	}
	if existing != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeDuplicateCategory,
			"a category with this name already exists",
			domainerror.ErrDuplicateCategory,
		)
	}

	// Persist; the repository creates the category row and the membership row
	// binding it to the creating user in one database transaction.
	created, err := uc.categoryRepo.Create(ctx, adapter.CreateCategoryData{
		Name:   name.String(),
		TypeID: input.TypeID,
		UserID: input.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrTransactionTypeNotFound):
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeTransactionTypeNotFound,
				"transaction type not found",
				domainerror.ErrTransactionTypeNotFound,
			)
		case errors.Is(err, domainerror.ErrDuplicateCategory):
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeDuplicateCategory,
				"a category with this name already exists",
				domainerror.ErrDuplicateCategory,
			)
		default:
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeUnexpectedCreateCategory,
				"unexpected failure creating category",
				err,
			)
		}
	}

	return &CreateCategoryOutput{
		Category: created,
	}, nil
}
