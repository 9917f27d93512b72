package storage

import "errors"

var (
	// ErrUnavailable means the backing store could not be reached or
	// written at all.
	ErrUnavailable = errors.New("storage: store unavailable")
	// ErrQuotaExceeded means the store ran out of space.
	ErrQuotaExceeded = errors.New("storage: quota exceeded")
	// ErrNotFound means no document exists for the requested key.
	ErrNotFound = errors.New("storage: not found")
)
