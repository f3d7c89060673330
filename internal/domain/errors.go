package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// record does not exist in the backing table.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails
// validation (e.g. malformed date, missing required field, empty content).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")
