package models_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"stock-tracker/internal/models"
)

func TestErrorGuards(t *testing.T) {
	typeErr := &models.TypeError{Field: "item", Expected: "a string", Got: "int"}
	valueErr := &models.ValueError{Field: "qty", Message: "quantity cannot be negative", Value: -2}
	notFoundErr := &models.NotFoundError{Item: "orange"}
	storageErr := &models.StorageError{Path: "inventory.json", Op: "write", Cause: errors.New("disk full")}
	parseErr := &models.ParseError{Path: "inventory.json", Cause: errors.New("unexpected end of input")}

	assert.True(t, models.IsTypeError(typeErr))
	assert.True(t, models.IsValueError(valueErr))
	assert.True(t, models.IsNotFoundError(notFoundErr))
	assert.True(t, models.IsStorageError(storageErr))
	assert.True(t, models.IsParseError(parseErr))

	assert.False(t, models.IsTypeError(valueErr))
	assert.False(t, models.IsNotFoundError(errors.New("plain")))
}

func TestErrorGuards_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading inventory: %w", &models.NotFoundError{Item: "apple"})
	assert.True(t, models.IsNotFoundError(wrapped))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "item must be a string, got int",
		(&models.TypeError{Field: "item", Expected: "a string", Got: "int"}).Error())
	assert.Equal(t, "item 'orange' not found in inventory",
		(&models.NotFoundError{Item: "orange"}).Error())
	assert.Contains(t,
		(&models.StorageError{Path: "inv.json", Op: "write", Cause: errors.New("disk full")}).Error(),
		"disk full")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := &models.StorageError{Path: "inventory.json", Op: "write", Cause: cause}
	assert.ErrorIs(t, err, cause)
}

func TestCodeForError(t *testing.T) {
	assert.Equal(t, models.ErrorCodeTypeMismatch, models.CodeForError(&models.TypeError{}))
	assert.Equal(t, models.ErrorCodeInvalidValue, models.CodeForError(&models.ValueError{}))
	assert.Equal(t, models.ErrorCodeItemNotFound, models.CodeForError(&models.NotFoundError{}))
	assert.Equal(t, models.ErrorCodeStorageError, models.CodeForError(&models.StorageError{}))
	assert.Equal(t, models.ErrorCodeParseError, models.CodeForError(&models.ParseError{}))
	assert.Equal(t, models.ErrorCodeInternal, models.CodeForError(errors.New("boom")))
}
