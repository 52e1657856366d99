package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the requested resource does not exist;
// no destination is selected, or a plan index points past the end.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. unknown section name, unknown plan type, zero conversion amount).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrPersistence is returned when a durable-storage write fails.
// Plan mutations are single-attempt: there is no retry, the caller must
// surface the failure. Handlers should map this to HTTP 503.
var ErrPersistence = errors.New("persistence error")

// ErrIndexOutOfRange is returned by positional plan removal when the index
// does not name a stored record. The stored sequence is left unchanged.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrSessionReplaced is returned when a section fetch completes after the
// destination it was started for has been superseded by a new selection.
// The late result is discarded rather than served for the wrong destination.
var ErrSessionReplaced = errors.New("destination selection replaced")

// FetchError reports a failed provider call or a malformed provider response.
// Category names what was being fetched ("holidays", "weather", "facts", ...)
// so the failure can be surfaced against the right view.
type FetchError struct {
	Category string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Category, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
