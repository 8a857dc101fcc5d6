// Package error defines domain-specific errors for the Household Ledger application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidUserEmail is returned when the email format is invalid.
	ErrInvalidUserEmail = errors.New("invalid email format")

	// ErrInvalidUserName is returned when the user name fails validation.
	ErrInvalidUserName = errors.New("invalid user name")

	// ErrInvalidPassword is returned when the password does not meet the policy.
	ErrInvalidPassword = errors.New("password does not meet minimum requirements")

	// ErrEmailAlreadyExists is returned when registering with an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	// Missing user and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token is invalid, malformed or revoked.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Registration errors (01XXXX)
	ErrCodeInvalidEmail    AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidUserName AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidPassword AuthErrorCode = "AUTH-010003"
	ErrCodeEmailExists     AuthErrorCode = "AUTH-010004"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020002"

	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"
	ErrCodeRevokedToken AuthErrorCode = "AUTH-030004"

	// Unexpected errors (99XXXX)
	ErrCodeUnexpectedRegister AuthErrorCode = "AUTH-990001"
	ErrCodeUnexpectedLogin    AuthErrorCode = "AUTH-990002"
	ErrCodeUnexpectedLogout   AuthErrorCode = "AUTH-990003"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
