// Package remote is the client's view of the authoritative document store:
// a request/response API with last-write-wins semantics per document.
package remote

import (
	"context"
	"errors"

	"github.com/courtside/statsync/pkg/api"
)

//go:generate moq -out store_mock.go . Store

// ErrDocumentNotFound indicates the document does not exist remotely. Absence
// is a normal outcome for the sync engine (a pure create), not a failure.
var ErrDocumentNotFound = errors.New("document not found")

// Store defines the remote document store operations the sync engine and the
// repository need.
type Store interface {
	// GetDocument fetches one document.
	// Returns ErrDocumentNotFound if the document never existed. Soft-deleted
	// documents are returned with their tombstone set.
	GetDocument(ctx context.Context, collection, id string) (*api.Document, error)

	// SetDocument writes a document. With merge set, fields absent from the
	// payload are preserved server-side; without it the document is replaced.
	SetDocument(ctx context.Context, collection, id string, doc api.Document, merge bool) error

	// DeleteDocument removes a document outright.
	DeleteDocument(ctx context.Context, collection, id string) error

	// QueryByField returns all documents whose field matches value, ordered
	// by orderBy descending when given.
	QueryByField(ctx context.Context, collection, field, value, orderBy string) ([]api.Document, error)
}
