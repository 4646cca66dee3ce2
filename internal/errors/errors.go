package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig   = "CONFIG"
	ErrNetwork  = "NETWORK"
	ErrHTTP     = "HTTP"
	ErrDecode   = "DECODE"
	ErrInternal = "INTERNAL" // a bug in parkwatch, e.g. a panicking fetcher
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error

	// Status is the HTTP status code for ErrHTTP errors, 0 otherwise.
	Status int
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewHTTPStatus creates an ErrHTTP error for a non-success response status.
func NewHTTPStatus(status int, endpoint string) *Error {
	return &Error{
		Code:       ErrHTTP,
		Message:    fmt.Sprintf("Snapshot endpoint answered HTTP %d", status),
		Suggestion: fmt.Sprintf("Check that %s is served by the parking backend", endpoint),
		Status:     status,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var pwErr *Error
	if errors.As(err, &pwErr) {
		return pwErr.Code == code
	}
	return false
}

// AsError returns the structured error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var pwErr *Error
	if errors.As(err, &pwErr) {
		return pwErr, true
	}
	return nil, false
}

// Code returns the code of a structured error, or "" for anything else.
func Code(err error) string {
	var pwErr *Error
	if errors.As(err, &pwErr) {
		return pwErr.Code
	}
	return ""
}

// HTTPStatus returns the response status carried by an ErrHTTP error.
func HTTPStatus(err error) (int, bool) {
	var pwErr *Error
	if errors.As(err, &pwErr) && pwErr.Code == ErrHTTP {
		return pwErr.Status, true
	}
	return 0, false
}

// Summary returns the one-line message of an error: the Message of a
// structured error, the first line of anything else.
func Summary(err error) string {
	if err == nil {
		return ""
	}
	var pwErr *Error
	if errors.As(err, &pwErr) {
		return pwErr.Message
	}
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}

// ExitError carries a process exit code without an error message. Commands
// return it when they already printed their own output.
type ExitError struct {
	Code int
}

// NewExitError creates an ExitError with the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// GetExitCode returns the exit code if err is an ExitError.
func GetExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
