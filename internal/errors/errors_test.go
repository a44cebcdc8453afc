package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "Customer not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("Order not found")

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
	assert.Equal(t, "Order not found", nfe.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	nfe, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, nfe)
}

func TestValidationError_MissingField(t *testing.T) {
	err := NewMissingFieldError("total_amount")

	assert.Equal(t, "total_amount", err.Field)
	assert.Equal(t, "total_amount is required", err.Error())

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "total_amount", ve.Field)
}

func TestValidationError_ErrorInterface(t *testing.T) {
	var err error = NewValidationError("body", "request body must be valid JSON")
	assert.Equal(t, "request body must be valid JSON", err.Error())
}

func TestDuplicateError(t *testing.T) {
	err := NewDuplicateError("Customer with this email already exists")

	de, ok := IsDuplicateError(err)
	assert.True(t, ok)
	assert.Equal(t, "Customer with this email already exists", de.Error())

	_, ok = IsDuplicateError(errors.New("other"))
	assert.False(t, ok)
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternalError("failed to persist data file", cause)

	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "failed to persist data file")
	assert.Contains(t, err.Error(), "disk full")
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}
