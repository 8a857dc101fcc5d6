// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/household-ledger/backend/internal/domain/entity"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// TransactionListQuery is the validated filter/order/pagination set for
// listing a user's transactions.
type TransactionListQuery struct {
	UserID      entity.UserID
	StartDate   *valueobject.TransactionDate
	EndDate     *valueobject.TransactionDate
	Type        *entity.TransactionType
	CategoryIDs []entity.CategoryID
	Order       valueobject.TransactionListOrder
	Pagination  valueobject.Pagination
}

// TransactionListResult is a page of transactions plus the total count for
// the filter.
type TransactionListResult struct {
	Items []*entity.Transaction
	Total int64
}

// TransactionTotals represents aggregated totals for a transaction filter.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// TransactionRepository defines the interface for transaction persistence
// operations. Soft-deleted rows are filtered out of every query. "Not found"
// is a nil entity with a nil error.
type TransactionRepository interface {
	// Create inserts the transaction row and its category link rows in one
	// atomic database transaction, returning the persisted entity with its id.
	Create(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error)

	// FindByID retrieves a transaction by its id.
	FindByID(ctx context.Context, id entity.TransactionID) (*entity.Transaction, error)

	// FindCategoryIDsByTransactionID retrieves the linked category ids in
	// their stored order.
	FindCategoryIDsByTransactionID(ctx context.Context, id entity.TransactionID) ([]entity.CategoryID, error)

	// FindByUserID retrieves all transactions of the user.
	FindByUserID(ctx context.Context, userID entity.UserID) ([]*entity.Transaction, error)

	// FindByUserIDAndPeriod retrieves the user's transactions within the
	// inclusive date range.
	FindByUserIDAndPeriod(ctx context.Context, userID entity.UserID, start, end valueobject.TransactionDate) ([]*entity.Transaction, error)

	// ListByUserID retrieves a page of transactions matching the query.
	ListByUserID(ctx context.Context, query TransactionListQuery) (*TransactionListResult, error)

	// GetTotals aggregates income/expense/net totals for the query's filter,
	// ignoring its pagination.
	GetTotals(ctx context.Context, query TransactionListQuery) (*TransactionTotals, error)

	// Update persists the entity's state and relinks its categories.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete persists the entity's soft-delete marker.
	Delete(ctx context.Context, transaction *entity.Transaction) error

	// ExistsByCategoryID reports whether any live transaction links the category.
	ExistsByCategoryID(ctx context.Context, id entity.CategoryID) (bool, error)
}
