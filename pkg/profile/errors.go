package profile

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEmail is returned for an empty user email
	ErrInvalidEmail = errors.New("invalid email")
	// ErrInvalidInterest is returned for an empty interest
	ErrInvalidInterest = errors.New("invalid interest")
)

// StorageError reports that the backing store was unreachable, timed out or
// rejected a write. It is never returned for missing profiles.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error in %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError checks if err is or wraps a StorageError
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
