// Package error defines domain-specific errors for the Household Ledger application.
package error

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Transaction domain errors.
var (
	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrTransactionTitleRequired is returned when the title is empty after trimming.
	ErrTransactionTitleRequired = errors.New("transaction title is required")

	// ErrTransactionTitleTooLong is returned when the title exceeds the maximum length.
	ErrTransactionTitleTooLong = errors.New("transaction title too long")

	// ErrTransactionMemoTooLong is returned when the memo exceeds the maximum length.
	ErrTransactionMemoTooLong = errors.New("transaction memo too long")

	// ErrInvalidAmount is returned when the amount is not a positive integer.
	ErrInvalidAmount = errors.New("invalid transaction amount")

	// ErrInvalidDateFormat is returned when the date string is not a valid calendar date.
	ErrInvalidDateFormat = errors.New("invalid transaction date format")

	// ErrFutureTransactionDate is returned when the date is in the future.
	ErrFutureTransactionDate = errors.New("transaction date must not be in the future")

	// ErrTransactionCategoryNotFound is returned when the linked category does not exist.
	ErrTransactionCategoryNotFound = errors.New("category not found")

	// ErrCategoryTypeMismatch is returned when a linked category's type differs from
	// the transaction's type.
	ErrCategoryTypeMismatch = errors.New("category type does not match transaction type")

	// ErrInvalidCategoryIDs is returned when an explicit category id list is empty.
	ErrInvalidCategoryIDs = errors.New("category ids must not be empty")

	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotOwner is returned when the caller does not own the transaction.
	ErrNotOwner = errors.New("not the owner of this transaction")

	// ErrCategoriesNotFound is returned when some of the requested category ids
	// do not resolve to categories visible to the user.
	ErrCategoriesNotFound = errors.New("one or more categories not found")

	// ErrInvalidTransactionPagination is returned when page or limit is out of range.
	ErrInvalidTransactionPagination = errors.New("invalid pagination parameters")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType       TransactionErrorCode = "TXN-010001"
	ErrCodeTransactionTitleRequired     TransactionErrorCode = "TXN-010002"
	ErrCodeTransactionTitleTooLong      TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionMemoTooLong       TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidAmount                TransactionErrorCode = "TXN-010005"
	ErrCodeInvalidDateFormat            TransactionErrorCode = "TXN-010006"
	ErrCodeInvalidCategoryIDs           TransactionErrorCode = "TXN-010007"
	ErrCodeInvalidTransactionPagination TransactionErrorCode = "TXN-010008"

	// Business-rule errors (02XXXX)
	ErrCodeFutureTransactionDate       TransactionErrorCode = "TXN-020001"
	ErrCodeTransactionCategoryNotFound TransactionErrorCode = "TXN-020002"
	ErrCodeCategoryTypeMismatch        TransactionErrorCode = "TXN-020003"
	ErrCodeTransactionNotFound         TransactionErrorCode = "TXN-020004"
	ErrCodeNotOwner                    TransactionErrorCode = "TXN-020005"
	ErrCodeCategoriesNotFound          TransactionErrorCode = "TXN-020006"

	// Unexpected errors (99XXXX)
	ErrCodeUnexpectedCreateTransaction TransactionErrorCode = "TXN-990001"
	ErrCodeUnexpectedUpdateTransaction TransactionErrorCode = "TXN-990002"
	ErrCodeUnexpectedDeleteTransaction TransactionErrorCode = "TXN-990003"
	ErrCodeUnexpectedListTransactions  TransactionErrorCode = "TXN-990004"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewCategoriesNotFoundError builds the ErrCategoriesNotFound variant with the
// missing ids listed in the message.
func NewCategoriesNotFoundError(missingIDs []int64) *TransactionError {
	parts := make([]string, len(missingIDs))
	for i, id := range missingIDs {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return NewTransactionError(
		ErrCodeCategoriesNotFound,
		fmt.Sprintf("categories not found: %s", strings.Join(parts, ", ")),
		ErrCategoriesNotFound,
	)
}
