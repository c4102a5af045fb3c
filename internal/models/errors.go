package models

import (
	"errors"
	"fmt"
)

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	ErrorCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	ErrorCodeInvalidValue ErrorCode = "INVALID_VALUE"
	ErrorCodeItemNotFound ErrorCode = "ITEM_NOT_FOUND"
	ErrorCodeStorageError ErrorCode = "STORAGE_ERROR"
	ErrorCodeParseError   ErrorCode = "PARSE_ERROR"
	ErrorCodeInternal     ErrorCode = "INTERNAL_ERROR"
)

// TypeError represents an argument whose type does not match the contract
type TypeError struct {
	Field    string `json:"field"`
	Expected string `json:"expected"`
	Got      string `json:"got"`
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s must be %s, got %s", e.Field, e.Expected, e.Got)
}

// ValueError represents an argument with the right type but an invalid value
type ValueError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Field, e.Message)
}

// NotFoundError represents an operation that referenced an absent item
type NotFoundError struct {
	Item string `json:"item"`
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item '%s' not found in inventory", e.Item)
}

// StorageError represents a failure of the underlying storage medium
type StorageError struct {
	Path  string `json:"path"`
	Op    string `json:"op"`
	Cause error  `json:"-"` // Don't expose internal error details in JSON
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to %s snapshot '%s': %v", e.Op, e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to %s snapshot '%s'", e.Op, e.Path)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// ParseError represents snapshot contents that could not be deserialized
type ParseError struct {
	Path  string `json:"path"`
	Cause error  `json:"-"`
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid JSON in snapshot '%s': %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("invalid JSON in snapshot '%s'", e.Path)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Error type guards for better error handling

func IsTypeError(err error) bool {
	var target *TypeError
	return errors.As(err, &target)
}

func IsValueError(err error) bool {
	var target *ValueError
	return errors.As(err, &target)
}

func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsStorageError(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}

func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// CodeForError extracts the error code from the error taxonomy
func CodeForError(err error) ErrorCode {
	switch {
	case IsTypeError(err):
		return ErrorCodeTypeMismatch
	case IsValueError(err):
		return ErrorCodeInvalidValue
	case IsNotFoundError(err):
		return ErrorCodeItemNotFound
	case IsStorageError(err):
		return ErrorCodeStorageError
	case IsParseError(err):
		return ErrorCodeParseError
	default:
		return ErrorCodeInternal
	}
}
