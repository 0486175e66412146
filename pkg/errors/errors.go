// Package errors provides custom error types for the scrydex system.
// These errors enable programmatic error checking with errors.Is and
// carry enough structure for callers to report failures precisely.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the scrydex system
var (
	// ErrNotFound indicates that a requested file or resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidPath indicates that a path exists but is not usable for the
	// requested operation (e.g. a directory where a file was required)
	ErrInvalidPath = errors.New("invalid path")

	// ErrMetadataMissing indicates that a card database file has no meta envelope
	ErrMetadataMissing = errors.New("metadata missing")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// PathError represents an error when a filesystem path is missing or has
// the wrong kind (file vs directory).
type PathError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("path %s: %s", e.Path, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *PathError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *PathError) Is(target error) bool {
	return target == ErrInvalidPath || (e.Err == nil && target == ErrNotFound)
}

// NewPathError creates a new PathError
func NewPathError(path, message string) *PathError {
	return &PathError{Path: path, Message: message}
}

// NotFoundError represents an error when a file or resource is not found
type NotFoundError struct {
	Resource string
	Path     string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Path)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, path string) *NotFoundError {
	return &NotFoundError{Resource: resource, Path: path}
}

// MetadataError represents an invalid or missing card database envelope
type MetadataError struct {
	File    string
	Field   string
	Message string
}

// Error implements the error interface
func (e *MetadataError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("metadata error in %s: field %s: %s", e.File, e.Field, e.Message)
	}
	return fmt.Sprintf("metadata error in %s: %s", e.File, e.Message)
}

// Is implements errors.Is support
func (e *MetadataError) Is(target error) bool {
	if e.Field == "" {
		return target == ErrMetadataMissing
	}
	return target == ErrInvalidInput
}

// NewMetadataError creates a new MetadataError
func NewMetadataError(file, field, message string) *MetadataError {
	return &MetadataError{File: file, Field: field, Message: message}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close", "walk"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidPath checks if an error is an invalid path error
func IsInvalidPath(err error) bool {
	return errors.Is(err, ErrInvalidPath)
}

// IsMetadataMissing checks if an error indicates a missing meta envelope
func IsMetadataMissing(err error) bool {
	return errors.Is(err, ErrMetadataMissing)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
