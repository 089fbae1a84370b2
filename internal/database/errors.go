package database

import "errors"

// Error kinds returned by the stores. Handlers translate them to HTTP status
// codes with errors.Is; anything else is an unexpected persistence failure.
var (
	// ErrNotFound indicates that the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict indicates a uniqueness violation.
	ErrConflict = errors.New("record already exists")
	// ErrValidation indicates malformed or missing input.
	ErrValidation = errors.New("invalid input")
)
