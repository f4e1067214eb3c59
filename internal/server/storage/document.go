// Package storage defines the server-side document store contracts.
package storage

import (
	"context"

	"github.com/courtside/statsync/pkg/api"
)

// DocumentStorage defines the server's document store. Writes are
// last-write-wins per document; deletion by the sync engine is a soft delete
// via the envelope tombstone, DELETE is a hard removal.
type DocumentStorage interface {
	// Get retrieves a document, tombstoned ones included.
	// Returns ErrDocumentNotFound if no row exists.
	Get(ctx context.Context, collection, id string) (*api.Document, error)

	// Set writes a document. With merge set, the incoming payload is
	// shallow-merged over the stored one and empty envelope fields keep
	// their stored values.
	Set(ctx context.Context, collection string, doc api.Document, merge bool) error

	// Delete removes a document row outright.
	Delete(ctx context.Context, collection, id string) error

	// QueryByField returns documents whose indexed field matches value,
	// ordered by orderBy descending when given.
	// Returns ErrUnsupportedField for fields the store does not index.
	QueryByField(ctx context.Context, collection, field, value, orderBy string) ([]api.Document, error)
}
