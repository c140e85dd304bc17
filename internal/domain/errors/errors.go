package errors

import (
	"net/http"

	"storefront/internal/errors"
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
	cause     error
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
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}

	return e.message
}

// Unwrap exposes the underlying cause, if any
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Is matches any BaseError carrying the same business error code, so that
// copies produced by WithDetails or WithCause still match the catalogue value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WithCause attaches the error that triggered this one
func (e *BaseError) WithCause(cause error) *BaseError {
	clone := *e
	clone.cause = cause

	return &clone
}

// Predefined error types
var (
	// Cart-related errors
	ErrSyncInProgress = NewBaseError(
		http.StatusConflict,
		"CART_SYNC_IN_PROGRESS",
		"Your cart is being synchronized, please try again in a moment",
		"",
	)

	ErrCartServiceUnavailable = NewBaseError(
		http.StatusBadGateway,
		"CART_SERVICE_UNAVAILABLE",
		"The cart service is unavailable, please try again later",
		"",
	)

	ErrCartRequestRejected = NewBaseError(
		http.StatusUnprocessableEntity,
		"CART_REQUEST_REJECTED",
		"The cart service rejected the request",
		"",
	)

	ErrCartEngineClosed = NewBaseError(
		http.StatusServiceUnavailable,
		"CART_ENGINE_CLOSED",
		"The cart is shutting down",
		"",
	)

	// Authentication-related errors
	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please sign in again",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"You are not signed in",
		"",
	)

	ErrInvalidCredential = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIAL",
		"The access credential is invalid or expired",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Storage-related errors
	ErrStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"Local storage is unavailable",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)
