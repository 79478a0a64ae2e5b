package store

import "errors"

var (
	// ErrValidation marks rejected input: empty titles, malformed URLs,
	// unknown sort keys.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks lookups for ids that are not in the library.
	ErrNotFound = errors.New("not found")
)
