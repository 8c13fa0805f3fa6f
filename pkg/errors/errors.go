// Package errors defines the coded errors returned by pipelog's
// collaborators (configuration, audit trail, tables). The status renderer
// itself only ever returns the underlying writer's error.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Audit trail errors
	ErrAuditOpen  ErrorCode = "AUDIT_OPEN"
	ErrAuditWrite ErrorCode = "AUDIT_WRITE"

	// Table errors
	ErrTableInvalid ErrorCode = "TABLE_INVALID"
)

// PipelogError represents a structured error with code and details
type PipelogError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PipelogError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PipelogError) Unwrap() error {
	return e.Wrapped
}

// Is matches any PipelogError carrying the same code
func (e *PipelogError) Is(target error) bool {
	var targetErr *PipelogError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PipelogError with the given code and message
func New(code ErrorCode, message string) *PipelogError {
	return &PipelogError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PipelogError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PipelogError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *PipelogError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PipelogError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *PipelogError) WithDetail(key string, value interface{}) *PipelogError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pErr *PipelogError
	if errors.As(err, &pErr) {
		return pErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PipelogError
func GetErrorCode(err error) ErrorCode {
	var pErr *PipelogError
	if errors.As(err, &pErr) {
		return pErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PipelogError
func GetErrorDetails(err error) map[string]interface{} {
	var pErr *PipelogError
	if errors.As(err, &pErr) {
		return pErr.Details
	}
	return nil
}
