// Package errors provides structured error types for the astrolabe generator.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the sweep driver and CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The sweep driver distinguishes between recoverable and fatal errors by
// code: LATITUDE_OUT_OF_RANGE is expected for latitudes in the equatorial
// band and causes that latitude to be skipped, every other code aborts the
// whole sweep so a partial kit set is never mistaken for a complete one.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeLatitudeOutOfRange, "latitude %.1f inside forbidden band", lat)
//	if errors.Is(err, errors.ErrCodeLatitudeOutOfRange) {
//	    // Skip this latitude
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRenderBackend, origErr, "render %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeLatitudeOutOfRange Code = "LATITUDE_OUT_OF_RANGE"
	ErrCodeInvalidFormat      Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig      Code = "INVALID_CONFIG"
	ErrCodeInvalidCatalog     Code = "INVALID_CATALOG"

	// Geometry errors
	ErrCodeDegenerateProjection Code = "DEGENERATE_PROJECTION"

	// Output errors
	ErrCodeRenderBackend Code = "RENDER_BACKEND"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
