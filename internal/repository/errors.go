package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable means no backing connection was ever established.
	// Callers are expected to degrade rather than crash.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotFound means the record id does not resolve.
	ErrNotFound = errors.New("record not found")

	// ErrPersistence wraps any other read/write fault against the store.
	ErrPersistence = errors.New("persistence error")
)

func persistenceErr(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
