package repository

import "errors"

// Store-level sentinel errors. Implementations translate their driver
// failures into these so callers can branch with errors.Is.
var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint (duplicate email, duplicate (user, property) bookmark).
	ErrDuplicate = errors.New("duplicate")
)
