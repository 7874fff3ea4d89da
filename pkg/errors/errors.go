// Package errors provides structured error types for figscope.
//
// Errors carry a machine-readable [Code] so that the CLI can map failures
// to hints and exit behaviour without matching on message text.
//
// # Error Codes
//
// Codes follow a prefix convention:
//   - INVALID_*: input validation failures (file key, node ids, depth, config)
//   - MISSING_TOKEN, UNAUTHORIZED, FORBIDDEN, PASSWORD_REJECTED: access to Figma
//   - NOT_FOUND, NETWORK_ERROR, RATE_LIMITED, TIMEOUT: remote failures
//   - INTERNAL_ERROR: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFileKey, "invalid file key: %q", key)
//	if errors.Is(err, errors.ErrCodeInvalidFileKey) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "fetch %s", fileKey)
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
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidFileKey Code = "INVALID_FILE_KEY"
	ErrCodeInvalidNodeIDs Code = "INVALID_NODE_IDS"
	ErrCodeInvalidDepth   Code = "INVALID_DEPTH"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"

	// Access errors
	ErrCodeMissingToken     Code = "MISSING_TOKEN"
	ErrCodeUnauthorized     Code = "UNAUTHORIZED"
	ErrCodeForbidden        Code = "FORBIDDEN"
	ErrCodePasswordRejected Code = "PASSWORD_REJECTED"

	// Remote errors
	ErrCodeNotFound    Code = "NOT_FOUND"
	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeTimeout     Code = "TIMEOUT"
	ErrCodeRateLimited Code = "RATE_LIMITED"

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

var hints = map[Code]string{
	ErrCodeMissingToken:     "Set FIGMA_TOKEN (Figma > Settings > Personal access tokens) or add token to figscope.toml",
	ErrCodeUnauthorized:     "The token was rejected; check that it has not expired",
	ErrCodeForbidden:        "The token cannot read this file; for password-protected files pass --password",
	ErrCodePasswordRejected: "Check the file password (--password or FIGMA_PASSWORD)",
	ErrCodeRateLimited:      "Figma is rate limiting this token; wait and retry, or rely on the cache",
	ErrCodeInvalidFileKey:   "Pass the key from the file URL (figma.com/design/<KEY>/...) or the full URL",
}

// Hint returns a remediation hint for err's code, or "" if there is none.
func Hint(err error) string {
	return hints[GetCode(err)]
}

// RateLimitedError provides additional information for rate-limited responses.
type RateLimitedError struct {
	RetryAfter int // Seconds to wait before retrying
	Message    string
}

// Error implements the error interface.
func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: retry after %d seconds", e.RetryAfter)
	}
	return "rate limited"
}

// Code returns the error code for this error type.
func (e *RateLimitedError) Code() Code {
	return ErrCodeRateLimited
}
