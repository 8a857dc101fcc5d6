// Package entity defines the core business entities for the domain layer.
package entity

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/household-ledger/backend/internal/domain/valueobject"
)

// TransactionType represents the type of transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether the type is income or expense.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// CategoryType returns the category type a linked category must have.
func (t TransactionType) CategoryType() CategoryType {
	return CategoryType(t)
}

const (
	// MaxTransactionTitleLength is the maximum allowed length for titles.
	MaxTransactionTitleLength = 100
	// MaxTransactionMemoLength is the maximum allowed length for memos.
	MaxTransactionMemoLength = 500
)

// Transaction invariant errors.
var (
	// ErrTitleRequired is returned when the title is empty after trimming.
	ErrTitleRequired = errors.New("transaction title must not be empty")

	// ErrTitleTooLong is returned when the title exceeds the maximum length.
	ErrTitleTooLong = errors.New("transaction title too long")

	// ErrMemoTooLong is returned when the memo exceeds the maximum length.
	ErrMemoTooLong = errors.New("transaction memo too long")

	// ErrAmountNotPositive is returned when the amount is zero.
	ErrAmountNotPositive = errors.New("transaction amount must be positive")

	// ErrInvalidType is returned when the transaction type is unknown.
	ErrInvalidType = errors.New("transaction type must be 'income' or 'expense'")

	// ErrNoCategories is returned when no category is linked.
	ErrNoCategories = errors.New("transaction must be linked to at least one category")
)

// Transaction represents a financial transaction in the Household Ledger system.
// It may be linked to multiple categories; the first id in CategoryIDs is the
// primary category. Deletion is logical: DeletedAt marks the row, repositories
// filter deleted rows out of every query.
type Transaction struct {
	ID          TransactionID
	UserID      UserID
	Type        TransactionType
	Title       string
	Amount      valueobject.Money
	Date        valueobject.TransactionDate
	CategoryIDs []CategoryID
	Memo        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// NewTransaction creates a validated Transaction. Title and memo are trimmed,
// bounds are enforced; the future-date rule is applied by the use case because
// it depends on wall-clock "today".
func NewTransaction(
	userID UserID,
	transactionType TransactionType,
	title string,
	amount valueobject.Money,
	date valueobject.TransactionDate,
	categoryIDs []CategoryID,
	memo string,
) (*Transaction, error) {
	if !transactionType.IsValid() {
		return nil, ErrInvalidType
	}
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateMemo(memo); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}
	if len(categoryIDs) == 0 {
		return nil, ErrNoCategories
	}

	now := time.Now().UTC()

	return &Transaction{
		UserID:      userID,
		Type:        transactionType,
		Title:       title,
		Amount:      amount,
		Date:        date,
		CategoryIDs: append([]CategoryID(nil), categoryIDs...),
		Memo:        memo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ReconstructTransaction rebuilds a Transaction loaded from storage without
// re-running construction validation.
func ReconstructTransaction(
	id TransactionID,
	userID UserID,
	transactionType TransactionType,
	title string,
	amount valueobject.Money,
	date valueobject.TransactionDate,
	categoryIDs []CategoryID,
	memo string,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Transaction {
	return &Transaction{
		ID:          id,
		UserID:      userID,
		Type:        transactionType,
		Title:       title,
		Amount:      amount,
		Date:        date,
		CategoryIDs: append([]CategoryID(nil), categoryIDs...),
		Memo:        memo,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

// IsOwnedBy reports whether the transaction belongs to the user.
func (t *Transaction) IsOwnedBy(userID UserID) bool {
	return t.UserID == userID
}

// PrimaryCategoryID returns the first category in resolved order, used where
// a single category reference is required.
func (t *Transaction) PrimaryCategoryID() CategoryID {
	if len(t.CategoryIDs) == 0 {
		return 0
	}
	return t.CategoryIDs[0]
}

// ChangeTitle replaces the title after re-validation.
func (t *Transaction) ChangeTitle(title string) error {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return err
	}
	t.Title = title
	t.touch()
	return nil
}

// ChangeAmount replaces the amount; it must remain positive.
func (t *Transaction) ChangeAmount(amount valueobject.Money) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	t.Amount = amount
	t.touch()
	return nil
}

// ChangeDate replaces the transaction date.
func (t *Transaction) ChangeDate(date valueobject.TransactionDate) {
	t.Date = date
	t.touch()
}

// ChangeMemo replaces the memo after re-validation.
func (t *Transaction) ChangeMemo(memo string) error {
	if err := validateMemo(memo); err != nil {
		return err
	}
	t.Memo = memo
	t.touch()
	return nil
}

// ChangeType replaces the transaction type. Category type consistency is the
// use case's responsibility since it needs the category aggregate.
func (t *Transaction) ChangeType(transactionType TransactionType) error {
	if !transactionType.IsValid() {
		return ErrInvalidType
	}
	t.Type = transactionType
	t.touch()
	return nil
}

// ChangeCategories replaces the linked category id list; it must stay non-empty.
func (t *Transaction) ChangeCategories(categoryIDs []CategoryID) error {
	if len(categoryIDs) == 0 {
		return ErrNoCategories
	}
	t.CategoryIDs = append([]CategoryID(nil), categoryIDs...)
	t.touch()
	return nil
}

// Delete marks the transaction as logically deleted.
func (t *Transaction) Delete() {
	now := time.Now().UTC()
	t.DeletedAt = &now
	t.UpdatedAt = now
}

// IsDeleted reports whether the transaction carries a soft-delete marker.
func (t *Transaction) IsDeleted() bool {
	return t.DeletedAt != nil
}

func (t *Transaction) touch() {
	t.UpdatedAt = time.Now().UTC()
}

func validateTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > MaxTransactionTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateMemo(memo string) error {
	if utf8.RuneCountInString(memo) > MaxTransactionMemoLength {
		return ErrMemoTooLong
	}
	return nil
}
