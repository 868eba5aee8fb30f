package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// activity does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned by service functions when a state change would
// violate a roster invariant (duplicate signup, unregister of an email that
// is not on the roster).
// Handlers should map this to HTTP 400.
var ErrConflict = errors.New("conflict")

// ErrValidation is returned by service functions when input fails basic
// validation before any database access (e.g. blank email or activity name).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
