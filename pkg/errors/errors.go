// Package errors provides structured error types for the treesvg toolkit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Style token validation failures are split into three codes matching the
// three checks performed, in order: INVALID_STYLE_FORMAT (token shape),
// INVALID_COLOR (color grammar), INVALID_SIZE (size range). Rendering and
// layout contract failures use INVALID_DIMENSION and DEGENERATE_INTERVAL.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidColor, "incorrect color: %q", c)
//	if errors.Is(err, errors.ErrCodeInvalidColor) {
//	    // Handle color validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "read tree %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Style token validation errors, in checking order.
	ErrCodeInvalidStyleFormat Code = "INVALID_STYLE_FORMAT"
	ErrCodeInvalidColor       Code = "INVALID_COLOR"
	ErrCodeInvalidSize        Code = "INVALID_SIZE"

	// Tree structure errors
	ErrCodeInvalidChild Code = "INVALID_CHILD"

	// Rendering errors
	ErrCodeInvalidDimension Code = "INVALID_DIMENSION"

	// Layout contract errors
	ErrCodeDegenerateInterval Code = "DEGENERATE_INTERVAL"

	// Input/output errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
