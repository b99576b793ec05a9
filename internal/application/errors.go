package application

import (
	"errors"
	"fmt"
)

// Application-level failure taxonomy. Handlers branch on these with
// errors.Is / errors.As and map them to HTTP statuses.
var (
	ErrPropertyNotFound   = errors.New("property not found")
	ErrSavedNotFound      = errors.New("saved property not found")
	ErrAlreadySaved       = errors.New("property already saved")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// StoreWriteError wraps a mutation the store could not commit. It is
// retryable and distinct from a Conflict: the caller may try again, whereas
// a duplicate save never succeeds.
type StoreWriteError struct {
	Err error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("store write failed: %v", e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }

func writeFailure(err error) error {
	return &StoreWriteError{Err: err}
}
