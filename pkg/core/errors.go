package core

import "errors"

// Common errors.
var (
	// ErrStorage wraps every failed write to the key-value backend.
	ErrStorage = errors.New("storage write failed")

	// ErrQuotaExceeded is returned by backends with a capacity limit.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	ErrReadOnly     = errors.New("store is in read-only mode")
	ErrClosed       = errors.New("editor is closed")
	ErrNotWatchable = errors.New("store does not support watching")
)
