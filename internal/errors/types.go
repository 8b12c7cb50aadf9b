// Package errors provides custom error types for better error handling throughout the application.
// Errors carry the layer and operation they came from so callers can test for them
// without string matching.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Error layers
const (
	LayerValidation = "validation"
	LayerConfig     = "config"
	LayerFile       = "file"
)

// LayeredError is an error tagged with the layer and operation that produced it.
type LayeredError struct {
	Layer     string            // Layer that produced the error (validation, config, file)
	Operation string            // Operation being performed
	Message   string            // Human readable description
	Cause     error             // Underlying error, may be nil
	Context   map[string]string // Extra key/value details
}

// NewLayeredError creates a new LayeredError.
func NewLayeredError(layer, operation, message string, cause error) *LayeredError {
	return &LayeredError{
		Layer:     layer,
		Operation: operation,
		Message:   message,
		Cause:     cause,
	}
}

// Error implements the error interface.
func (e *LayeredError) Error() string {
	msg := fmt.Sprintf("[%s:%s] %s", e.Layer, e.Operation, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *LayeredError) Unwrap() error {
	return e.Cause
}

// WithContext adds a key/value detail and returns the same error for chaining.
func (e *LayeredError) WithContext(key, value string) *LayeredError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// ValidationError creates an error for rejected input.
func ValidationError(operation, message string) *LayeredError {
	return NewLayeredError(LayerValidation, operation, message, nil)
}

// ConfigError creates an error for configuration loading failures.
func ConfigError(operation, message string, cause error) *LayeredError {
	return NewLayeredError(LayerConfig, operation, message, cause)
}

// FileError creates an error for file access failures.
func FileError(operation, message string, cause error) *LayeredError {
	return NewLayeredError(LayerFile, operation, message, cause)
}

// IsLayer reports whether err or any error it wraps is a LayeredError in the given layer.
func IsLayer(err error, layer string) bool {
	var layered *LayeredError
	if stderrors.As(err, &layered) {
		return layered.Layer == layer
	}
	return false
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return IsLayer(err, LayerValidation)
}

// IsConfig reports whether err is a configuration error.
func IsConfig(err error) bool {
	return IsLayer(err, LayerConfig)
}
