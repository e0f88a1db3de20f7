// Package errors defines application-level error types carrying HTTP status
// and business error codes for the delivery layer.
package errors

import (
	"net/http"

	"salespulse/internal/errors"
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
	// Import-related errors
	ErrCSVFilesRequired = NewBaseError(
		http.StatusBadRequest,
		"CSV_FILES_REQUIRED",
		"All three CSV files are required",
		"",
	)

	ErrImportFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"IMPORT_FAILED",
		"Import failed",
		"",
	)

	// Analytics-related errors
	ErrAnalyticsUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"ANALYTICS_UNAVAILABLE",
		"Analytics data is unavailable",
		"",
	)

	ErrInvalidPeriod = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PERIOD",
		"Period must be in YYYY-MM format",
		"",
	)

	ErrInvalidManagerID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MANAGER_ID",
		"Manager id must be an integer",
		"",
	)
)

// Response is the error payload envelope written by the HTTP error handler.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business error code and details of a failed request.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// NewDatabaseExecuteError wraps a low-level database error into a generic
// internal AppError, keeping the driver error as details.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		err.Error(),
	)
}
