package utils

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrorType represents different types of errors
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "validation"
	ErrorTypeIO          ErrorType = "io"
	ErrorTypeExecution   ErrorType = "execution"
	ErrorTypeEncrypted   ErrorType = "encrypted"
	ErrorTypeSystem      ErrorType = "system"
	ErrorTypeUnsupported ErrorType = "unsupported"
	ErrorTypeTimeout     ErrorType = "timeout"
	ErrorTypePermission  ErrorType = "permission"
	ErrorTypeNotFound    ErrorType = "not_found"
)

// TypedError is implemented by errors that know their own ErrorType
type TypedError interface {
	error
	ErrorType() ErrorType
}

// AppError represents an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// ErrorType implements TypedError
func (e *AppError) ErrorType() ErrorType {
	return e.Type
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Type == t.Type
	}
	return false
}

// WithContext adds context information to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new application error
func NewError(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string, cause error) *AppError {
	return NewError(ErrorTypeValidation, message, cause)
}

// NewIOError creates an I/O error
func NewIOError(message string, cause error) *AppError {
	return NewError(ErrorTypeIO, message, cause)
}

// NewSystemError creates a system error
func NewSystemError(message string, cause error) *AppError {
	return NewError(ErrorTypeSystem, message, cause)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(message string, cause error) *AppError {
	return NewError(ErrorTypeNotFound, message, cause)
}

// WrapError wraps an existing error with additional context.
// An empty errorType keeps the type reported by err or classifies it.
func WrapError(err error, errorType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) && errorType == "" {
		return &AppError{
			Type:    appErr.Type,
			Message: message + ": " + appErr.Message,
			Cause:   appErr.Cause,
			Context: appErr.Context,
		}
	}

	if errorType == "" {
		errorType = GetErrorType(err)
	}

	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// classifyError automatically classifies an error based on its content
func classifyError(err error) ErrorType {
	if err == nil {
		return ErrorTypeSystem
	}

	errStr := strings.ToLower(err.Error())

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		return ErrorTypeTimeout
	case errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist):
		return ErrorTypeNotFound
	case errors.Is(err, os.ErrPermission):
		return ErrorTypePermission
	case strings.Contains(errStr, "permission denied") || strings.Contains(errStr, "access denied"):
		return ErrorTypePermission
	case strings.Contains(errStr, "no such file") || strings.Contains(errStr, "not found"):
		return ErrorTypeNotFound
	default:
		return ErrorTypeSystem
	}
}

// GetErrorType extracts the error type from an error
func GetErrorType(err error) ErrorType {
	var typed TypedError
	if errors.As(err, &typed) {
		return typed.ErrorType()
	}
	return classifyError(err)
}
