package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for the failure categories enact can hit
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Environment resolution errors
	ErrEnvNotFound ErrorCode = "ENV_NOT_FOUND"
	ErrEnvInvalid  ErrorCode = "ENV_INVALID"

	// Shell emission errors
	ErrUnsupportedShell  ErrorCode = "UNSUPPORTED_SHELL"
	ErrUnrenderableValue ErrorCode = "UNRENDERABLE_VALUE"
	ErrNotSourced        ErrorCode = "NOT_SOURCED"
	ErrScriptWrite       ErrorCode = "SCRIPT_WRITE"
)

// EnactError represents a structured error with code and details
type EnactError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EnactError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EnactError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *EnactError) Is(target error) bool {
	var targetErr *EnactError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EnactError with the given code and message
func New(code ErrorCode, message string) *EnactError {
	return &EnactError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EnactError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EnactError {
	return &EnactError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an EnactError
func Wrap(err error, code ErrorCode, message string) *EnactError {
	if err == nil {
		return nil
	}
	return &EnactError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EnactError {
	if err == nil {
		return nil
	}
	return &EnactError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *EnactError) WithDetail(key string, value interface{}) *EnactError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var enactErr *EnactError
	if errors.As(err, &enactErr) {
		return enactErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an EnactError
func GetErrorCode(err error) ErrorCode {
	var enactErr *EnactError
	if errors.As(err, &enactErr) {
		return enactErr.Code
	}
	return ErrUnknown
}
