// Package error defines domain-specific errors for the Household Ledger application.
package error

// RequestErrorCode defines error codes for malformed requests that fail
// before reaching a use case.
type RequestErrorCode string

const (
	// ErrCodeInvalidRequestBody is returned when the request body cannot be parsed.
	ErrCodeInvalidRequestBody RequestErrorCode = "REQ-010001"

	// ErrCodeInvalidQueryParameter is returned when a query parameter cannot be parsed.
	ErrCodeInvalidQueryParameter RequestErrorCode = "REQ-010002"

	// ErrCodeInvalidPathParameter is returned when a path parameter cannot be parsed.
	ErrCodeInvalidPathParameter RequestErrorCode = "REQ-010003"
)
