package domain

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable is returned when no document store is configured.
var ErrStoreUnavailable = errors.New("firebase not configured")

// StoreError wraps a failure reported by the document store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
