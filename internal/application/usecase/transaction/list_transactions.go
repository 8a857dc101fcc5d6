// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// Default listing parameters.
const (
	DefaultTransactionPage  = 1
	DefaultTransactionLimit = 20
)

// ListTransactionsInput represents the input for listing transactions. Nil
// pagination fields fall back to the documented defaults; explicit values
// are validated as given, so a literal zero is rejected.
type ListTransactionsInput struct {
	UserID      entity.UserID
	StartDate   *string
	EndDate     *string
	Type        *string
	CategoryIDs []int64
	Order       string
	Page        *int
	Limit       *int
}

// TransactionTotalsDTO is the aggregated totals block of the list response.
type TransactionTotalsDTO struct {
	IncomeTotal  int64 `json:"incomeTotal"`
	ExpenseTotal int64 `json:"expenseTotal"`
	NetTotal     int64 `json:"netTotal"`
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Items      []TransactionDTO
	Pagination ListPaginationDTO
	Totals     TransactionTotalsDTO
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	logger          *slog.Logger
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	logger *slog.Logger,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		logger:          logger,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	page := DefaultTransactionPage
	if input.Page != nil {
		page = *input.Page
	}
	limit := DefaultTransactionLimit
	if input.Limit != nil {
		limit = *input.Limit
	}

	pagination, err := valueobject.PaginationFromPage(page, limit)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionPagination,
			"page must be >= 1 and limit between 1 and 100",
			domainerror.ErrInvalidTransactionPagination,
		)
	}

	order := valueobject.TransactionListOrderFrom(valueobject.SortDesc)
	if input.Order != "" {
		order, err = valueobject.ParseTransactionListOrder(input.Order)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionPagination,
				"order must be 'asc' or 'desc'",
				err,
			)
		}
	}

	var startDate, endDate *valueobject.TransactionDate
	if input.StartDate != nil {
		date, err := valueobject.ParseTransactionDate(*input.StartDate)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidDateFormat,
				"startDate must be a valid 'YYYY-MM-DD' calendar date",
				domainerror.ErrInvalidDateFormat,
			)
		}
		startDate = &date
	}
	if input.EndDate != nil {
		date, err := valueobject.ParseTransactionDate(*input.EndDate)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidDateFormat,
				"endDate must be a valid 'YYYY-MM-DD' calendar date",
				domainerror.ErrInvalidDateFormat,
			)
		}
		endDate = &date
	}

	var transactionType *entity.TransactionType
	if input.Type != nil {
		t := entity.TransactionType(*input.Type)
		if !t.IsValid() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"type must be 'income' or 'expense'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		transactionType = &t
	}

	filterIDs := make([]entity.CategoryID, len(input.CategoryIDs))
	for i, id := range input.CategoryIDs {
		filterIDs[i] = entity.CategoryID(id)
	}

	query := adapter.TransactionListQuery{
		UserID:      input.UserID,
		StartDate:   startDate,
		EndDate:     endDate,
		Type:        transactionType,
		CategoryIDs: filterIDs,
		Order:       order,
		Pagination:  pagination,
	}

	result, err := uc.transactionRepo.ListByUserID(ctx, query)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnexpectedListTransactions,
			"unexpected failure listing transactions",
			err,
		)
	}

	// One batched lookup for the whole page; ids are deduplicated first.
	lookup, err := uc.resolveCategories(ctx, input.UserID, result.Items)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnexpectedListTransactions,
			"unexpected failure loading categories",
			err,
		)
	}

	items, paginationDTO := BuildTransactionList(result.Items, lookup, page, limit, result.Total)

	return &ListTransactionsOutput{
		Items:      items,
		Pagination: paginationDTO,
		Totals:     uc.loadTotals(ctx, query),
	}, nil
}

func (uc *ListTransactionsUseCase) resolveCategories(
	ctx context.Context,
	userID entity.UserID,
	items []*entity.Transaction,
) (map[entity.CategoryID]*entity.Category, error) {
	seen := make(map[entity.CategoryID]struct{})
	var unique []entity.CategoryID
	for _, item := range items {
		for _, id := range item.CategoryIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			unique = append(unique, id)
		}
	}

	lookup := make(map[entity.CategoryID]*entity.Category, len(unique))
	if len(unique) == 0 {
		return lookup, nil
	}

	categories, err := uc.categoryRepo.FindByIDs(ctx, userID, unique)
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		lookup[category.ID] = category
	}
	return lookup, nil
}

// loadTotals aggregates the totals for the filter. A totals failure does not
// fail the listing; the block degrades to zeros.
func (uc *ListTransactionsUseCase) loadTotals(ctx context.Context, query adapter.TransactionListQuery) TransactionTotalsDTO {
	totals, err := uc.transactionRepo.GetTotals(ctx, query)
	if err != nil || totals == nil {
		if err != nil && uc.logger != nil {
			uc.logger.Warn("failed to aggregate transaction totals", "error", err)
		}
		return TransactionTotalsDTO{}
	}
	return TransactionTotalsDTO{
		IncomeTotal:  totals.IncomeTotal.IntPart(),
		ExpenseTotal: totals.ExpenseTotal.IntPart(),
		NetTotal:     totals.NetTotal.IntPart(),
	}
}
