package lounge

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the syncer and handlers to avoid circular
// imports. Callers check them with errors.Is.
var (
	// ErrInvalidArgument means the caller passed an unusable identifier.
	// It is the only error a sync pass fails fast on, before any I/O.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound translates a remote 404. Callers treat it as "no data
	// for this resource", never as a hard failure.
	ErrNotFound = errors.New("not found")
)

// StatusError is a non-retryable HTTP failure (4xx other than 404/429).
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("lounge api returned status %d: %s", e.Code, e.Body)
}
