package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/household-ledger/backend/internal/application/usecase/category"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	createUseCase *category.CreateCategoryUseCase
	updateUseCase *category.UpdateCategoryUseCase
	listUseCase   *category.ListCategoriesUseCase
	getUseCase    *category.GetCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	listUseCase *category.ListCategoriesUseCase,
	getUseCase *category.GetCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
	}
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidRequestBody),
		})
		return
	}

	input := category.CreateCategoryInput{
		Name:   req.Name,
		TypeID: req.TypeID,
		UserID: userID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Update handles PATCH /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidRequestBody),
		})
		return
	}

	input := category.UpdateCategoryInput{
		CategoryID:   entity.CategoryID(categoryID),
		UserID:       userID,
		IsVisible:    req.IsVisible,
		CustomName:   req.CustomName,
		DisplayOrder: req.DisplayOrder,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserCategoryResponse(output.Category))
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var query dto.ListCategoriesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid query parameters",
			Code:  string(domainerror.ErrCodeInvalidQueryParameter),
		})
		return
	}

	input := category.ListCategoriesInput{
		UserID:        userID,
		Page:          query.Page,
		PerPage:       query.PerPage,
		SortBy:        query.SortBy,
		SortOrder:     query.SortOrder,
		IncludeHidden: query.IncludeHidden,
	}
	if query.Type != "" {
		categoryType := entity.CategoryType(query.Type)
		input.Type = &categoryType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListCategoriesResponse(output))
}

// Get handles GET /categories/:id requests.
func (c *CategoryController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	input := category.GetCategoryInput{
		CategoryID: entity.CategoryID(categoryID),
		UserID:     userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserCategoryResponse(output.Category))
}

// parseIDParam parses a positive integer path parameter, writing the error
// response itself when the value is malformed.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " parameter",
			Code:  string(domainerror.ErrCodeInvalidPathParameter),
		})
		return 0, false
	}
	return id, true
}

// respondUnauthenticated is the fallback when the auth middleware did not
// populate the user id. It should be unreachable on authenticated routes.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// handleCategoryError maps category domain errors to HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		status := getStatusCodeForCategoryError(categoryErr.Code)
		ctx.JSON(status, dto.ErrorResponse{
			Error: categoryErr.Message,
			Code:  string(categoryErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeUnexpectedListCategories),
	})
}

// getStatusCodeForCategoryError returns the HTTP status for a category
// error code.
func getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidCategoryName,
		domainerror.ErrCodeInvalidTypeID,
		domainerror.ErrCodeInvalidUpdateData,
		domainerror.ErrCodeInvalidCategoryID,
		domainerror.ErrCodeInvalidPagination,
		domainerror.ErrCodeInvalidSortParameter:
		return http.StatusBadRequest
	case domainerror.ErrCodeDuplicateCategory:
		return http.StatusConflict
	case domainerror.ErrCodeTransactionTypeNotFound,
		domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDefaultCategoryForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
