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

// UpdateTransactionInput represents the input for a partial transaction
// update. Nil pointers mean "field omitted"; a nil CategoryIDs slice keeps
// the existing category links.
type UpdateTransactionInput struct {
	UserID        entity.UserID
	TransactionID entity.TransactionID
	Type          *string
	Title         *string
	Amount        *int64
	Date          *string
	CategoryIDs   []int64
	Memo          *string
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction TransactionDTO
}

// UpdateTransactionUseCase handles partial transaction updates.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	now             func() time.Time
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		now:             time.Now,
	}
}

// Execute performs the transaction update. Only the supplied fields are
// validated and applied.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	var newType *entity.TransactionType
	if input.Type != nil {
		t := entity.TransactionType(*input.Type)
		if !t.IsValid() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"type must be 'income' or 'expense'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		newType = &t
	}

	var newTitle *string
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
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
		newTitle = &title
	}

	if input.Memo != nil && utf8.RuneCountInString(*input.Memo) > entity.MaxTransactionMemoLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionMemoTooLong,
			"memo must be at most 500 characters",
			domainerror.ErrTransactionMemoTooLong,
		)
	}

	var newAmount *valueobject.Money
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidAmount,
				"amount must be a positive integer",
				domainerror.ErrInvalidAmount,
			)
		}
		amount, err := valueobject.MoneyFromInt(*input.Amount, "")
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidAmount,
				"amount must be a positive integer",
				domainerror.ErrInvalidAmount,
			)
		}
		newAmount = &amount
	}

	var newDate *valueobject.TransactionDate
	if input.Date != nil {
		date, err := valueobject.ParseTransactionDate(*input.Date)
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
		newDate = &date
	}

	// A nil slice means "keep the current links"; an explicit empty slice
	// is a client error.
	if input.CategoryIDs != nil && len(input.CategoryIDs) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCategoryIDs,
			"categoryIds must not be empty",
			domainerror.ErrInvalidCategoryIDs,
		)
	}

	current, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnexpectedUpdateTransaction,
			"unexpected failure loading transaction",
			err,
		)
	}
	if current == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	if !current.IsOwnedBy(input.UserID) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotOwner,
			"transaction belongs to another user",
			domainerror.ErrNotOwner,
		)
	}

	// Effective category set: explicit ids win, otherwise the links as stored.
	var effectiveIDs []entity.CategoryID
	if input.CategoryIDs != nil {
		effectiveIDs = make([]entity.CategoryID, len(input.CategoryIDs))
		for i, id := range input.CategoryIDs {
			effectiveIDs[i] = entity.CategoryID(id)
		}
	} else {
		effectiveIDs, err = uc.transactionRepo.FindCategoryIDsByTransactionID(ctx, input.TransactionID)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeUnexpectedUpdateTransaction,
				"unexpected failure loading transaction categories",
				err,
			)
		}
	}

	categories, err := uc.categoryRepo.FindByIDs(ctx, input.UserID, effectiveIDs)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnexpectedUpdateTransaction,
			"unexpected failure loading categories",
			err,
		)
	}
	lookup := make(map[entity.CategoryID]*entity.Category, len(categories))
	for _, category := range categories {
		lookup[category.ID] = category
	}
	var missing []int64
	for _, id := range effectiveIDs {
		if _, ok := lookup[id]; !ok {
			missing = append(missing, id.Int64())
		}
	}
	if len(missing) > 0 {
		return nil, domainerror.NewCategoriesNotFoundError(missing)
	}

	// The effective type must match every resolved category; the first
	// offending category in resolved order is reported.
	effectiveType := current.Type
	if newType != nil {
		effectiveType = *newType
	}
	for _, id := range effectiveIDs {
		if lookup[id].Type != effectiveType.CategoryType() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeCategoryTypeMismatch,
				"category type does not match transaction type",
				domainerror.ErrCategoryTypeMismatch,
			)
		}
	}

	if newType != nil {
		if err := current.ChangeType(*newType); err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"type must be 'income' or 'expense'",
				err,
			)
		}
	}
	if newTitle != nil {
		if err := current.ChangeTitle(*newTitle); err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionTitleRequired,
				"title is required",
				err,
			)
		}
	}
	if newAmount != nil {
		if err := current.ChangeAmount(*newAmount); err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidAmount,
				"amount must be a positive integer",
				err,
			)
		}
	}
	if newDate != nil {
		current.ChangeDate(*newDate)
	}
	if input.Memo != nil {
		if err := current.ChangeMemo(*input.Memo); err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionMemoTooLong,
				"memo must be at most 500 characters",
				err,
			)
		}
	}
	if err := current.ChangeCategories(effectiveIDs); err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCategoryIDs,
			"categoryIds must not be empty",
			err,
		)
	}

	if err := uc.transactionRepo.Update(ctx, current); err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnexpectedUpdateTransaction,
			"unexpected failure updating transaction",
			err,
		)
	}

	return &UpdateTransactionOutput{
		Transaction: BuildTransactionDTO(current, lookup),
	}, nil
}
