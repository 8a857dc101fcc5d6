package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/household-ledger/backend/internal/application/usecase/transaction"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidRequestBody),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:     userID,
		Type:       req.Type,
		Title:      req.Title,
		Amount:     req.Amount,
		Date:       req.Date,
		CategoryID: req.CategoryID,
		Memo:       req.Memo,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.TransactionResponse{Transaction: output.Transaction})
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidRequestBody),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		UserID:        userID,
		TransactionID: entity.TransactionID(transactionID),
		Type:          req.Type,
		Title:         req.Title,
		Amount:        req.Amount,
		Date:          req.Date,
		CategoryIDs:   req.CategoryIDs,
		Memo:          req.Memo,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TransactionResponse{Transaction: output.Transaction})
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	input := transaction.DeleteTransactionInput{
		UserID:        userID,
		TransactionID: entity.TransactionID(transactionID),
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteTransactionResponse{Deleted: output.Deleted})
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var query dto.ListTransactionsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid query parameters",
			Code:  string(domainerror.ErrCodeInvalidQueryParameter),
		})
		return
	}

	input := transaction.ListTransactionsInput{
		UserID:      userID,
		CategoryIDs: query.CategoryIDs,
		Order:       query.Order,
		Page:        query.Page,
		Limit:       query.Limit,
	}
	if query.StartDate != "" {
		input.StartDate = &query.StartDate
	}
	if query.EndDate != "" {
		input.EndDate = &query.EndDate
	}
	if query.Type != "" {
		input.Type = &query.Type
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Items:      output.Items,
		Pagination: output.Pagination,
		Totals:     output.Totals,
	})
}

// handleTransactionError maps transaction domain errors to HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		status := getStatusCodeForTransactionError(transactionErr.Code)
		ctx.JSON(status, dto.ErrorResponse{
			Error: transactionErr.Message,
			Code:  string(transactionErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeUnexpectedListTransactions),
	})
}

// getStatusCodeForTransactionError returns the HTTP status for a transaction
// error code.
func getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeTransactionTitleRequired,
		domainerror.ErrCodeTransactionTitleTooLong,
		domainerror.ErrCodeTransactionMemoTooLong,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidCategoryIDs,
		domainerror.ErrCodeInvalidTransactionPagination,
		domainerror.ErrCodeFutureTransactionDate,
		domainerror.ErrCodeCategoryTypeMismatch:
		return http.StatusBadRequest
	case domainerror.ErrCodeTransactionCategoryNotFound,
		domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeCategoriesNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotOwner:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
