// Package error defines domain-specific errors for the Household Ledger application.
package error

import "errors"

// Category domain errors.
var (
	// ErrInvalidCategoryName is returned when the category name fails validation.
	ErrInvalidCategoryName = errors.New("invalid category name")

	// ErrInvalidTypeID is returned when the category type id is not a positive integer.
	ErrInvalidTypeID = errors.New("invalid category type id")

	// ErrDuplicateCategory is returned when a category with the same name already exists.
	ErrDuplicateCategory = errors.New("category name already exists")

	// ErrTransactionTypeNotFound is returned when the referenced type id has no type row.
	ErrTransactionTypeNotFound = errors.New("transaction type not found")

	// ErrCategoryNotFound is returned when a category is not found for the user.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDefaultCategoryUpdateForbidden is returned when a default category is modified.
	ErrDefaultCategoryUpdateForbidden = errors.New("default categories cannot be modified")

	// ErrInvalidUpdateData is returned when an update supplies no field or invalid values.
	ErrInvalidUpdateData = errors.New("invalid category update data")

	// ErrInvalidCategoryID is returned when a category id is not a positive integer.
	ErrInvalidCategoryID = errors.New("invalid category id")

	// ErrInvalidCategoryPagination is returned when page or perPage is out of range.
	ErrInvalidCategoryPagination = errors.New("invalid pagination parameters")

	// ErrInvalidSortParameter is returned when sortBy or sortOrder is unknown.
	ErrInvalidSortParameter = errors.New("invalid sort parameter")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCategoryName  CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidTypeID        CategoryErrorCode = "CAT-010002"
	ErrCodeInvalidUpdateData    CategoryErrorCode = "CAT-010003"
	ErrCodeInvalidCategoryID    CategoryErrorCode = "CAT-010004"
	ErrCodeInvalidPagination    CategoryErrorCode = "CAT-010005"
	ErrCodeInvalidSortParameter CategoryErrorCode = "CAT-010006"

	// Business-rule errors (02XXXX)
	ErrCodeDuplicateCategory        CategoryErrorCode = "CAT-020001"
	ErrCodeTransactionTypeNotFound  CategoryErrorCode = "CAT-020002"
	ErrCodeCategoryNotFound         CategoryErrorCode = "CAT-020003"
	ErrCodeDefaultCategoryForbidden CategoryErrorCode = "CAT-020004"

	// Unexpected errors (99XXXX)
	ErrCodeUnexpectedCreateCategory CategoryErrorCode = "CAT-990001"
	ErrCodeUnexpectedUpdateCategory CategoryErrorCode = "CAT-990002"
	ErrCodeUnexpectedListCategories CategoryErrorCode = "CAT-990003"
	ErrCodeUnexpectedGetCategory    CategoryErrorCode = "CAT-990004"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
