// Package errors defines the application-level error taxonomy. Each AppError
// carries the HTTP status and business code the delivery layer surfaces, so
// handlers never translate errors themselves.
package errors

import (
	"net/http"

	"tasktrack/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// Registration errors. Duplicate registrations are a 400 to match the
	// public API contract, even though the collision is detected as a storage
	// conflict.
	ErrDuplicateUsername = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_USERNAME",
		"Username is already registered",
		"",
	)

	// Authentication errors. ErrInvalidCredentials covers both an unknown
	// username and a wrong password; the two cases must stay indistinguishable
	// to callers so usernames cannot be enumerated.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect username or password",
		"",
	)

	// ErrTokenInvalid covers a missing, malformed, tampered or expired bearer
	// token as well as a token whose subject no longer exists. One message for
	// all of them, for the same anti-enumeration reason.
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Could not validate credentials",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Task errors. Missing and not-owned tasks share this error.
	ErrTaskNotFound = NewBaseError(
		http.StatusNotFound,
		"TASK_NOT_FOUND",
		"Task not found",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request payload",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected database failure as a 500.
func NewDatabaseExecuteError(err error, details string) *BaseError {
	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		"Database operation failed",
		details+": "+err.Error(),
	)
}
