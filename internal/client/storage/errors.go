package storage

import "errors"

// Common client storage errors
var (
	// ErrGameNotFound indicates that no cached game exists, including the
	// case where a cached entry expired and was purged
	ErrGameNotFound = errors.New("game not found in cache")

	// ErrResolutionNotFound indicates that no conflict resolution memo exists
	ErrResolutionNotFound = errors.New("conflict resolution not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
