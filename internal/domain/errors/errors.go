// Package errors defines the caller-facing error taxonomy: validation,
// authorization, not-found, conflict and database errors, each mapped to an
// HTTP status and a stable business code.
package errors

import (
	"net/http"

	"mercado/internal/errors"
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
	// Company-related errors
	ErrCompanyNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPANY_NOT_FOUND",
		"company not found",
		"",
	)

	// Delivery configuration errors
	ErrDeliveryConfigNotFound = NewBaseError(
		http.StatusNotFound,
		"DELIVERY_CONFIG_NOT_FOUND",
		"delivery configuration not found",
		"",
	)

	ErrDuplicateDeliveryConfig = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_DELIVERY_CONFIG",
		"company already has a delivery configuration",
		"",
	)

	ErrZoneNotFound = NewBaseError(
		http.StatusNotFound,
		"DELIVERY_ZONE_NOT_FOUND",
		"delivery zone not found",
		"",
	)

	// Schedule configuration errors
	ErrScheduleConfigNotFound = NewBaseError(
		http.StatusNotFound,
		"SCHEDULE_CONFIG_NOT_FOUND",
		"schedule configuration not found",
		"",
	)

	ErrDuplicateScheduleConfig = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_SCHEDULE_CONFIG",
		"company already has a schedule configuration",
		"",
	)

	ErrHourEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"SCHEDULE_HOUR_NOT_FOUND",
		"schedule hour entry not found",
		"",
	)

	ErrDuplicateRegularEntry = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_REGULAR_ENTRY",
		"a regular entry already exists for this weekday",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Authorization-related errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"you do not have permission to manage this company",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// Validation returns a validation error carrying the concrete rule that failed.
func Validation(details string) AppError {
	return ErrValidationFailed.WithDetails(details)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
