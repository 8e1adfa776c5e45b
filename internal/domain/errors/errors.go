package errors

import (
	"net/http"

	"bootwatcher/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so errors created
// with WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
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
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request data",
		"",
	)

	// ErrInvalidPhoneNumber is a validation failure with the message shown to subscribers
	ErrInvalidPhoneNumber = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please enter a valid phone number.",
		"",
	)

	// Provider-related errors
	ErrProviderFailed = NewBaseError(
		http.StatusBadGateway,
		"PROVIDER_FAILED",
		"Upstream provider request failed",
		"",
	)

	ErrSMSUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"SMS_UNAVAILABLE",
		"Failed to send SMS",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"STORE_UNAVAILABLE",
		"Realtime store request failed",
		"",
	)

	// Lookup-related errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrMarkerNotFound = NewBaseError(
		http.StatusNotFound,
		"MARKER_NOT_FOUND",
		"Custom marker not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong!",
		"",
	)
)

// ProviderError reports a failed call to an external provider, keeping the
// raw provider message for the caller. It matches ErrProviderFailed.
type ProviderError struct {
	provider string
	err      error
}

// NewProviderError creates a provider error for the named provider
func NewProviderError(provider string, err error) AppError {
	return &ProviderError{
		provider: provider,
		err:      err,
	}
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	return errors.Wrapf(e.err, "%s request failed", e.provider).Error()
}

// Unwrap returns the underlying provider error
func (e *ProviderError) Unwrap() error {
	return e.err
}

// Is reports whether target is ErrProviderFailed
func (e *ProviderError) Is(target error) bool {
	return ErrProviderFailed.Is(target)
}

// HTTPCode returns the HTTP status code
func (e *ProviderError) HTTPCode() int {
	return ErrProviderFailed.HTTPCode()
}

// ErrorCode returns the business error code
func (e *ProviderError) ErrorCode() string {
	return ErrProviderFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ProviderError) Message() string {
	return e.provider + " request failed"
}

// Details returns the raw provider message
func (e *ProviderError) Details() string {
	return e.err.Error()
}
