package errors

import "fmt"

// ValidationError reports a missing or empty required field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewMissingFieldError builds the validation error for a required field
// that is absent or empty.
func NewMissingFieldError(field string) *ValidationError {
	return NewValidationError(field, fmt.Sprintf("%s is required", field))
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

// DuplicateError reports a uniqueness violation (customer email).
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string {
	return e.Message
}

func NewDuplicateError(message string) *DuplicateError {
	return &DuplicateError{Message: message}
}

func IsDuplicateError(err error) (*DuplicateError, bool) {
	if de, ok := err.(*DuplicateError); ok {
		return de, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nfe, ok := err.(*NotFoundError); ok {
		return nfe, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}
