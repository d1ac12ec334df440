package protocol

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of protocol error that occurred
type ErrorType int

const (
	// ErrTypeEmptyField indicates a required text field was empty or all whitespace
	ErrTypeEmptyField ErrorType = iota
	// ErrTypeInvalidField indicates a field value is syntactically present but semantically invalid
	ErrTypeInvalidField
	// ErrTypeInconsistentField indicates a flat field disagrees with the embedded Controller record
	ErrTypeInconsistentField
	// ErrTypeInconsistentState indicates a flat field disagrees with the embedded state snapshot
	ErrTypeInconsistentState
	// ErrTypeConstraint indicates a cross-field business rule was violated
	ErrTypeConstraint
	// ErrTypeDecode indicates the JSON text could not be parsed into any recognized shape
	ErrTypeDecode
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeEmptyField:
		return "Empty Field"
	case ErrTypeInvalidField:
		return "Invalid Field"
	case ErrTypeInconsistentField:
		return "Inconsistent Field"
	case ErrTypeInconsistentState:
		return "Inconsistent State"
	case ErrTypeConstraint:
		return "Constraint Violated"
	case ErrTypeDecode:
		return "Decode Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ProtocolError represents an error produced while validating, parsing or
// serializing an Open Protocol message.
type ProtocolError struct {
	Type        ErrorType // Category of error
	Field       string    // Offending field (if applicable)
	Value       string    // Offending value (if applicable)
	Description string    // Human-readable detail
	Err         error     // Underlying error (if any)
}

// Error implements the error interface
func (e *ProtocolError) Error() string {
	switch e.Type {
	case ErrTypeEmptyField:
		return fmt.Sprintf("field %s cannot be empty or all whitespace", e.Field)
	case ErrTypeInvalidField:
		if e.Description != "" {
			return fmt.Sprintf("value [%s] is invalid for the field %s - %s", e.Value, e.Field, e.Description)
		}
		return fmt.Sprintf("value [%s] is invalid for the field %s", e.Value, e.Field)
	case ErrTypeInconsistentField:
		return fmt.Sprintf("value of field %s is not the same as the matching field in the Controller", e.Field)
	case ErrTypeInconsistentState:
		return fmt.Sprintf("value of field %s is not the same as the matching field in the state", e.Field)
	case ErrTypeConstraint:
		return e.Description
	case ErrTypeDecode:
		if e.Err != nil {
			return fmt.Sprintf("invalid message: %v", e.Err)
		}
		return fmt.Sprintf("invalid message: %s", e.Description)
	default:
		return fmt.Sprintf("%s: %s", e.Type, e.Description)
	}
}

// Unwrap returns the underlying error for error chain inspection
func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// NewEmptyFieldError creates an error for a required field that is empty or all whitespace
func NewEmptyFieldError(field string) *ProtocolError {
	return &ProtocolError{Type: ErrTypeEmptyField, Field: field}
}

// NewInvalidFieldError creates an error for a field holding a semantically invalid value
func NewInvalidFieldError(field, value, description string) *ProtocolError {
	return &ProtocolError{Type: ErrTypeInvalidField, Field: field, Value: value, Description: description}
}

// NewInconsistentFieldError creates an error for a flat field that disagrees with
// the embedded Controller record
func NewInconsistentFieldError(field string) *ProtocolError {
	return &ProtocolError{Type: ErrTypeInconsistentField, Field: field}
}

// NewInconsistentStateError creates an error for a flat field that disagrees with
// the embedded state snapshot
func NewInconsistentStateError(field string) *ProtocolError {
	return &ProtocolError{Type: ErrTypeInconsistentState, Field: field}
}

// NewConstraintError creates an error for a violated cross-field business rule
func NewConstraintError(description string) *ProtocolError {
	return &ProtocolError{Type: ErrTypeConstraint, Description: description}
}

// NewDecodeError wraps an underlying JSON diagnostic as a protocol decode error
func NewDecodeError(err error) *ProtocolError {
	return &ProtocolError{Type: ErrTypeDecode, Err: err}
}

func isErrorType(err error, et ErrorType) bool {
	var perr *ProtocolError
	if errors.As(err, &perr) {
		return perr.Type == et
	}
	return false
}

// IsEmptyFieldError checks if an error reports an empty required field
func IsEmptyFieldError(err error) bool { return isErrorType(err, ErrTypeEmptyField) }

// IsInvalidFieldError checks if an error reports an invalid field value
func IsInvalidFieldError(err error) bool { return isErrorType(err, ErrTypeInvalidField) }

// IsInconsistentFieldError checks if an error reports disagreement with the Controller record
func IsInconsistentFieldError(err error) bool { return isErrorType(err, ErrTypeInconsistentField) }

// IsInconsistentStateError checks if an error reports disagreement with the state snapshot
func IsInconsistentStateError(err error) bool { return isErrorType(err, ErrTypeInconsistentState) }

// IsConstraintError checks if an error reports a violated business rule
func IsConstraintError(err error) bool { return isErrorType(err, ErrTypeConstraint) }

// IsDecodeError checks if an error reports unparseable JSON input
func IsDecodeError(err error) bool { return isErrorType(err, ErrTypeDecode) }
