package types

import "errors"

// Store lifecycle and repository errors.
var (
	// ErrStorageUnavailable wraps any failure to open, read, or write the
	// database file (missing directory, permissions, corruption).
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrNotFound signals a lookup for a recipe ID that does not exist.
	// An expected outcome, checked with errors.Is, never fatal.
	ErrNotFound = errors.New("recipe not found")

	// ErrStoreDetached is returned by repository operations after Detach.
	ErrStoreDetached = errors.New("store is detached")

	// ErrAlreadyAttached is returned by Attach on an attached store.
	ErrAlreadyAttached = errors.New("store is already attached")
)
