// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
	domainerror "github.com/household-ledger/backend/internal/domain/error"
	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID     entity.UserID
	Type       string
	Title      string
	Amount     int64
	Date       string
	CategoryID int64
	Memo       string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction TransactionDTO
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	now             func() time.Time
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		now:             time.Now,
	}
}

// Execute performs the transaction creation. Validation stages run in a
// fixed order and short-circuit on the first failure.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	transactionType := entity.TransactionType(input.Type)
	if !transactionType.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionTitleRequired,
			"title is required",
			domainerror.ErrTransactionTitleRequired,
		)
	}
	if utf8.RuneCountInString(title) > entity.MaxTransactionTitleLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionTitleTooLong,
			"title must be at most 100 characters",
			domainerror.ErrTransactionTitleTooLong,
		)
	}

	if utf8.RuneCountInString(input.Memo) > entity.MaxTransactionMemoLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionMemoTooLong,
			"memo must be at most 500 characters",
			domainerror.ErrTransactionMemoTooLong,
		)
	}

	if input.Amount <= 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be a positive integer",
			domainerror.ErrInvalidAmount,
		)
	}
	amount, err := valueobject.MoneyFromInt(input.Amount, "")
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be a positive integer",
			domainerror.ErrInvalidAmount,
		)
	}

	date, err := valueobject.ParseTransactionDate(input.Date)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDateFormat,
			"date must be a valid 'YYYY-MM-DD' calendar date",
			domainerror.ErrInvalidDateFormat,
		)
	}
	if date.IsFuture(uc.now()) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeFutureTransactionDate,
			"date must not be in the future",
			domainerror.ErrFutureTransactionDate,
		)
	}

	categoryID := entity.CategoryID(input.CategoryID)
	categories, err := uc.categoryRepo.FindByIDs(ctx, input.UserID, []entity.CategoryID{categoryID})
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnexpectedCreateTransaction,
			"unexpected failure loading category",
			err,
		)
	}
	if len(categories) == 0 || categories[0] == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionCategoryNotFound,
			"category not found",
			domainerror.ErrTransactionCategoryNotFound,
		)
	}
	category := categories[0]
	if category.Type != transactionType.CategoryType() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeMismatch,
			"category type does not match transaction type",
			domainerror.ErrCategoryTypeMismatch,
		)
	}

	tx, err := entity.NewTransaction(
		input.UserID,
		transactionType,
		title,
		amount,
		date,
		[]entity.CategoryID{categoryID},
		input.Memo,
	)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnexpectedCreateTransaction,
			"unexpected failure building transaction",
			err,
		)
	}

	created, err := uc.transactionRepo.Create(ctx, tx)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnexpectedCreateTransaction,
			"unexpected failure creating transaction",
			err,
		)
	}

	lookup := map[entity.CategoryID]*entity.Category{categoryID: category}

	return &CreateTransactionOutput{
		Transaction: BuildTransactionDTO(created, lookup),
	}, nil
}
