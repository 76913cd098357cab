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
	ErrCancelled    ErrorCode = "CANCELLED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Manifest errors
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"
	ErrManifestWrite ErrorCode = "MANIFEST_WRITE"

	// Mapping errors
	ErrMappingCollision ErrorCode = "MAPPING_COLLISION"
	ErrMappingExhausted ErrorCode = "MAPPING_EXHAUSTED"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCopy   ErrorCode = "FILE_COPY"
	ErrFileMove   ErrorCode = "FILE_MOVE"
	ErrFileRemove ErrorCode = "FILE_REMOVE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// MiltonError represents a structured error with code and details
type MiltonError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MiltonError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MiltonError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MiltonError) Is(target error) bool {
	var targetErr *MiltonError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MiltonError with the given code and message
func New(code ErrorCode, message string) *MiltonError {
	return &MiltonError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MiltonError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MiltonError {
	return &MiltonError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MiltonError
func Wrap(err error, code ErrorCode, message string) *MiltonError {
	if err == nil {
		return nil
	}
	return &MiltonError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MiltonError {
	if err == nil {
		return nil
	}
	return &MiltonError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MiltonError) WithDetail(key string, value interface{}) *MiltonError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var miltonErr *MiltonError
	if errors.As(err, &miltonErr) {
		return miltonErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MiltonError
func GetErrorCode(err error) ErrorCode {
	var miltonErr *MiltonError
	if errors.As(err, &miltonErr) {
		return miltonErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MiltonError
func GetErrorDetails(err error) map[string]interface{} {
	var miltonErr *MiltonError
	if errors.As(err, &miltonErr) {
		return miltonErr.Details
	}
	return nil
}
