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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Command errors
	ErrCommandExecute ErrorCode = "COMMAND_EXECUTE"
	ErrCommandExit    ErrorCode = "COMMAND_EXIT"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileRemove    ErrorCode = "FILE_REMOVE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrTempDir       ErrorCode = "TEMP_DIR"
)

// RicerError represents a structured error with code and details
type RicerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RicerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RicerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RicerError) Is(target error) bool {
	var targetErr *RicerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RicerError with the given code and message
func New(code ErrorCode, message string) *RicerError {
	return &RicerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RicerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RicerError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a RicerError.
// A nil err yields a nil error interface, not a typed nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &RicerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *RicerError) WithDetail(key string, value interface{}) *RicerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ricerErr *RicerError
	if errors.As(err, &ricerErr) {
		return ricerErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RicerError
func GetErrorCode(err error) ErrorCode {
	var ricerErr *RicerError
	if errors.As(err, &ricerErr) {
		return ricerErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RicerError
func GetErrorDetails(err error) map[string]interface{} {
	var ricerErr *RicerError
	if errors.As(err, &ricerErr) {
		return ricerErr.Details
	}
	return nil
}
