// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// Default listing parameters.
const (
	DefaultCategoryPage    = 1
	DefaultCategoryPerPage = 30
)

// ListCategoriesInput represents the input for listing categories. Nil
// pagination fields fall back to the documented defaults; explicit values
// are validated as given, so a literal zero is rejected.
type ListCategoriesInput struct {
	UserID        entity.UserID
	Page          *int
	PerPage       *int
	SortBy        string
	SortOrder     string
	Type          *entity.CategoryType
	IncludeHidden bool
}

// PageInfo describes the returned page.
type PageInfo struct {
	Page       int
	PerPage    int
	TotalPages int
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Items    []*entity.UserCategory
	PageInfo PageInfo
	Total    int64
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	page := DefaultCategoryPage
	if input.Page != nil {
		page = *input.Page
	}
	perPage := DefaultCategoryPerPage
	if input.PerPage != nil {
		perPage = *input.PerPage
	}

	pagination, err := valueobject.PaginationFromPage(page, perPage)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidPagination,
			"page must be >= 1 and perPage between 1 and 100",
			domainerror.ErrInvalidCategoryPagination,
		)
	}

	sortBy := valueobject.CategorySortByDisplayOrder
	if input.SortBy != "" {
		sortBy, err = valueobject.ParseCategorySortField(input.SortBy)
		if err != nil {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidSortParameter,
				"sortBy must be 'name', 'createdAt' or 'displayOrder'",
				domainerror.ErrInvalidSortParameter,
			)
		}
	}

	sortOrder := valueobject.SortAsc
	if input.SortOrder != "" {
		sortOrder, err = valueobject.ParseSortDirection(input.SortOrder)
		if err != nil {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidSortParameter,
				"sortOrder must be 'asc' or 'desc'",
				domainerror.ErrInvalidSortParameter,
			)
		}
	}

	result, err := uc.categoryRepo.FindAllWithPagination(ctx, adapter.CategoryListOptions{
		UserID:        input.UserID,
		Pagination:    pagination,
		SortBy:        sortBy,
		SortOrder:     sortOrder,
		Type:          input.Type,
		IncludeHidden: input.IncludeHidden,
	})
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeUnexpectedListCategories,
			"unexpected failure listing categories",
			err,
		)
	}

	totalPages := int((result.Total + int64(perPage) - 1) / int64(perPage))

	return &ListCategoriesOutput{
		Items: result.Items,
		PageInfo: PageInfo{
			Page:       page,
			PerPage:    perPage,
			TotalPages: totalPages,
		},
		Total: result.Total,
	}, nil
}
