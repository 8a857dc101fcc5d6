package dto

import (
	"time"

	"github.com/household-ledger/backend/internal/application/usecase/category"
	"github.com/household-ledger/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name   string `json:"name" binding:"required"`
	TypeID int64  `json:"typeId" binding:"required"`
}

// UpdateCategoryRequest represents the request body for a partial category
// update. Omitted fields keep their current value; an empty customName
// clears the override.
type UpdateCategoryRequest struct {
	IsVisible    *bool   `json:"isVisible"`
	CustomName   *string `json:"customName"`
	DisplayOrder *int    `json:"displayOrder"`
}

// ListCategoriesQuery represents the query parameters for category listing.
// Page and perPage bind as pointers so an explicit "?page=0" stays
// distinguishable from an absent parameter and fails validation.
type ListCategoriesQuery struct {
	Page          *int   `form:"page"`
	PerPage       *int   `form:"perPage"`
	SortBy        string `form:"sortBy"`
	SortOrder     string `form:"sortOrder"`
	Type          string `form:"type"`
	IncludeHidden bool   `form:"includeHidden"`
}

// CategoryResponse represents a shared category in API responses.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserCategoryResponse represents a category through one user's view,
// with the custom name and visibility settings applied.
type UserCategoryResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CustomName   *string   `json:"customName"`
	DisplayName  string    `json:"displayName"`
	Type         string    `json:"type"`
	IsDefault    bool      `json:"isDefault"`
	IsVisible    bool      `json:"isVisible"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ListCategoriesResponse represents the category listing response.
type ListCategoriesResponse struct {
	Items   []UserCategoryResponse `json:"items"`
	Page    int                    `json:"page"`
	PerPage int                    `json:"perPage"`
	Total   int64                  `json:"total"`
	Pages   int                    `json:"totalPages"`
}

// ToCategoryResponse converts a category entity to its response representation.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID.Int64(),
		Name:      c.Name,
		Type:      string(c.Type),
		IsDefault: c.IsDefault,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToUserCategoryResponse converts a user-scoped category view to its
// response representation.
func ToUserCategoryResponse(uc *entity.UserCategory) UserCategoryResponse {
	return UserCategoryResponse{
		ID:           uc.CategoryID.Int64(),
		Name:         uc.Name,
		CustomName:   uc.CustomName,
		DisplayName:  uc.DisplayName(),
		Type:         string(uc.Type),
		IsDefault:    uc.IsDefault,
		IsVisible:    uc.IsVisible,
		DisplayOrder: uc.DisplayOrder,
		CreatedAt:    uc.CreatedAt,
		UpdatedAt:    uc.UpdatedAt,
	}
}

// ToListCategoriesResponse converts a listing output to its response
// representation.
func ToListCategoriesResponse(output *category.ListCategoriesOutput) ListCategoriesResponse {
	items := make([]UserCategoryResponse, len(output.Items))
	for i, item := range output.Items {
		items[i] = ToUserCategoryResponse(item)
	}
	return ListCategoriesResponse{
		Items:   items,
		Page:    output.PageInfo.Page,
		PerPage: output.PageInfo.PerPage,
		Total:   output.Total,
		Pages:   output.PageInfo.TotalPages,
	}
}
