package remote

import (
	"errors"
	"fmt"
)

// ErrorCode classifies failures at the remote planning boundary.
type ErrorCode string

const (
	NOT_IMPLEMENTED ErrorCode = "NOT_IMPLEMENTED"
)

// Error is a structured remote-boundary error with a code, a message,
// and an optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns "[CODE] message" or "[CODE] message: cause".
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches by error code, so errors.Is works against the package
// sentinels regardless of message text.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// NewError creates an Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError creates an Error that wraps an existing cause.
func WrapError(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// ErrNotImplemented is the sentinel callers test against with errors.Is
// when the placeholder is invoked.
var ErrNotImplemented = NewError(NOT_IMPLEMENTED, "remote planning integration is not implemented")
