package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeConnection represents graph database connection errors
	ErrorTypeConnection ErrorType = "connection"
	// ErrorTypeQuery represents graph query errors
	ErrorTypeQuery ErrorType = "query"
	// ErrorTypeNotFound represents lookups with no matching records
	ErrorTypeNotFound ErrorType = "notfound"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Config Errors

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Connection Errors

// ErrConnectionFailed is returned when the graph database is unreachable
// or rejects the supplied credentials.
type ErrConnectionFailed struct {
	*BaseError
	URI string
}

func NewConnectionFailed(uri string, err error) *ErrConnectionFailed {
	return &ErrConnectionFailed{
		BaseError: NewBaseError(ErrorTypeConnection, fmt.Sprintf("failed to connect to Neo4j: %s", uri), err),
		URI:       uri,
	}
}

// Query Errors

// ErrQueryFailed is returned when a graph query fails
type ErrQueryFailed struct {
	*BaseError
	Operation string
}

func NewQueryFailed(operation string, err error) *ErrQueryFailed {
	return &ErrQueryFailed{
		BaseError: NewBaseError(ErrorTypeQuery, fmt.Sprintf("query failed: %s", operation), err),
		Operation: operation,
	}
}

// NotFound Errors

// ErrNotFound is returned when a requested entity has no matching records.
// Not fatal: callers surface it as an empty result with a message.
type ErrNotFound struct {
	*BaseError
	Kind string
	Key  string
}

func NewNotFound(kind, key string) *ErrNotFound {
	return &ErrNotFound{
		BaseError: NewBaseError(ErrorTypeNotFound, fmt.Sprintf("%s not found: %s", kind, key), nil),
		Kind:      kind,
		Key:       key,
	}
}

// Helper functions

// IsErrorType checks if an error (or any error it wraps) carries the
// given type.
func IsErrorType(err error, errType ErrorType) bool {
	for err != nil {
		if baseErr, ok := err.(*BaseError); ok && baseErr.Type == errType {
			return true
		}
		if carrier, ok := err.(interface{ base() *BaseError }); ok {
			if carrier.base().Type == errType {
				return true
			}
		}
		err = errors.Unwrap(err)
	}
	return false
}

func (e *BaseError) base() *BaseError { return e }

// IsNotFound reports whether the error is a not-found lookup.
func IsNotFound(err error) bool {
	return IsErrorType(err, ErrorTypeNotFound)
}
