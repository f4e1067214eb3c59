package storage

import "errors"

// Common server storage errors
var (
	// ErrDocumentNotFound indicates that no document exists for the key
	ErrDocumentNotFound = errors.New("document not found")

	// ErrUnsupportedField indicates a query on a field the store does not
	// index
	ErrUnsupportedField = errors.New("unsupported query field")
)
