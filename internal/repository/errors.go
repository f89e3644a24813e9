package repository

import "errors"

// ErrUnavailable is returned when the document store has no live connection.
// Callers treat it as a transient condition distinct from a write failure.
var ErrUnavailable = errors.New("document store unavailable")
