// Package util provides utility functions and types shared across the
// catalog server.
//
// # Error Conventions
//
// This project follows a standardized error pattern across all packages:
//
//   - Sentinel errors (errors.New) for well-known, stable conditions
//     that callers check with errors.Is(). Example: ErrDataUnavailable.
//   - Structured error types for context-rich errors that carry
//     additional fields (e.g., ConfigError). Each type implements
//     Error(), Unwrap() (if wrapping), and Is().
//   - fmt.Errorf with %w for ad-hoc wrapping that adds context to an
//     existing error without introducing a new type.
package util

import (
	"errors"
	"fmt"
)

// Common sentinel errors.
var (
	ErrDataUnavailable = errors.New("data unavailable")
	ErrNotFound        = errors.New("not found")
	ErrConfigInvalid   = errors.New("invalid configuration")
)

// ConfigError represents a configuration-related error.
type ConfigError struct {
	Field   string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error at %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target.
func (e *ConfigError) Is(target error) bool {
	if target == ErrConfigInvalid {
		return true
	}
	_, ok := target.(*ConfigError)
	return ok || errors.Is(e.Cause, target)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// NewConfigErrorWithCause creates a new ConfigError with a cause.
func NewConfigErrorWithCause(field, message string, cause error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Cause: cause}
}

// DataError represents a failure to read or decode the catalog data
// source. It always matches ErrDataUnavailable via errors.Is().
type DataError struct {
	Path    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *DataError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("data error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("data error: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *DataError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target.
func (e *DataError) Is(target error) bool {
	if target == ErrDataUnavailable {
		return true
	}
	_, ok := target.(*DataError)
	return ok || errors.Is(e.Cause, target)
}

// NewDataError creates a new DataError.
func NewDataError(path, message string, cause error) *DataError {
	return &DataError{Path: path, Message: message, Cause: cause}
}
