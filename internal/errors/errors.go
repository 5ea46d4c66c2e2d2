// Package apperrors defines the application's error classes and exit codes.
// Every type implements Unwrap where it carries a cause, so callers can rely
// on errors.Is and errors.As across the whole chain.
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Process exit statuses.
const (
	ExitSuccess           = 0   // Run completed.
	ExitErrorGeneric      = 1   // Unclassified failure.
	ExitErrorTimeout      = 2   // The -timeout deadline expired.
	ExitErrorMismatch     = 3   // Calculators disagreed on the result.
	ExitErrorConfig       = 4   // Bad flags or environment.
	ExitErrorInvalidInput = 5   // n does not name a prime (n < 1).
	ExitErrorCanceled     = 130 // SIGINT or SIGTERM.
)

// ConfigError reports a configuration the application cannot run with.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError builds a ConfigError from a format string.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError wraps a failure raised while finding a prime.
// Error returns the cause's message unchanged.
type CalculationError struct {
	Cause error
}

func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original cause.
func (e CalculationError) Unwrap() error { return e.Cause }

// OutputError reports a failure to write a result or metrics file.
type OutputError struct {
	// Path is the file that could not be written.
	Path string
	// Cause is the underlying I/O error, if any.
	Cause error
}

func (e OutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot write %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("cannot write %s", e.Path)
}

// Unwrap returns the underlying I/O error.
func (e OutputError) Unwrap() error { return e.Cause }

// NewOutputError wraps cause for the file at path. cause may be nil.
func NewOutputError(path string, cause error) error {
	return OutputError{Path: path, Cause: cause}
}

// WrapError prefixes err with a formatted context message using %w.
// It returns nil when err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err is a cancellation or a deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ValidationError reports a single rejected input value, such as a flag or
// a line typed at the REPL.
type ValidationError struct {
	// Field names the input that failed validation.
	Field string
	// Message describes the failure.
	Message string
	// Value is the rejected value (optional).
	Value any
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string, value any) error {
	return ValidationError{Field: field, Message: message, Value: value}
}
