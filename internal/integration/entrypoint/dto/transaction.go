package dto

import (
	"github.com/household-ledger/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction
// creation.
type CreateTransactionRequest struct {
	Type       string `json:"type" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Amount     int64  `json:"amount" binding:"required"`
	Date       string `json:"date" binding:"required"`
	CategoryID int64  `json:"categoryId" binding:"required"`
	Memo       string `json:"memo"`
}

// UpdateTransactionRequest represents the request body for a partial
// transaction update. Omitted fields keep their current value; omitting
// categoryIds keeps the existing category links.
type UpdateTransactionRequest struct {
	Type        *string `json:"type"`
	Title       *string `json:"title"`
	Amount      *int64  `json:"amount"`
	Date        *string `json:"date"`
	CategoryIDs []int64 `json:"categoryIds"`
	Memo        *string `json:"memo"`
}

// ListTransactionsQuery represents the query parameters for transaction
// listing. Page and limit bind as pointers so an explicit "?page=0" stays
// distinguishable from an absent parameter and fails validation.
type ListTransactionsQuery struct {
	StartDate   string  `form:"startDate"`
	EndDate     string  `form:"endDate"`
	Type        string  `form:"type"`
	CategoryIDs []int64 `form:"categoryId"`
	Order       string  `form:"order"`
	Page        *int    `form:"page"`
	Limit       *int    `form:"limit"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	Transaction transaction.TransactionDTO `json:"transaction"`
}

// ListTransactionsResponse represents the transaction listing response.
type ListTransactionsResponse struct {
	Items      []transaction.TransactionDTO     `json:"items"`
	Pagination transaction.ListPaginationDTO    `json:"pagination"`
	Totals     transaction.TransactionTotalsDTO `json:"totals"`
}

// DeleteTransactionResponse represents the transaction deletion response.
type DeleteTransactionResponse struct {
	Deleted bool `json:"deleted"`
}
