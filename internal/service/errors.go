package service

import (
	"errors"
	"fmt"
)

// RejectReason classifies why a submission failed validation.
type RejectReason string

const (
	ReasonMissingField RejectReason = "missing_field"
	ReasonInvalidEmail RejectReason = "invalid_email_format"
	ReasonFieldTooLong RejectReason = "field_too_long"
)

// ValidationError is a client-caused rejection of a submission. It carries
// the specific offending detail and is never logged as a server error.
type ValidationError struct {
	Reason RejectReason
	// Field names the offending field for missing_field and field_too_long.
	Field string
	// Length is the offending rune count for field_too_long.
	Length int
	// Value is the received value for invalid_email_format.
	Value string
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonMissingField:
		return fmt.Sprintf("field %q is required", e.Field)
	case ReasonInvalidEmail:
		return fmt.Sprintf("email %q is not a valid address", e.Value)
	case ReasonFieldTooLong:
		return fmt.Sprintf("field %q too long (%d)", e.Field, e.Length)
	default:
		return "invalid submission"
	}
}

// ErrStoreUnavailable is returned when the document store has no live
// connection. It is transient: the caller may retry the whole request.
var ErrStoreUnavailable = errors.New("store unavailable")

// PersistenceError wraps an unexpected store-write failure. The raw driver
// error is only surfaced to clients in development mode.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return "persistence failed: " + e.Err.Error() }

func (e *PersistenceError) Unwrap() error { return e.Err }
