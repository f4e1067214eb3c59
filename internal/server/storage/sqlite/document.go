package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/courtside/statsync/internal/server/storage"
	"github.com/courtside/statsync/pkg/api"
)

// Get retrieves a document, tombstoned ones included
func (s *Storage) Get(ctx context.Context, collection, id string) (*api.Document, error) {
	query := `
		SELECT id, owner_id, payload, version, last_modified, deleted, deleted_at
		FROM documents
		WHERE collection = ? AND id = ?
	`

	doc, err := scanDocument(s.db.QueryRowContext(ctx, query, collection, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return doc, nil
}

// Set writes a document, last write wins. With merge set, the incoming
// payload is shallow-merged over the stored payload and empty envelope
// fields keep their stored values; this is what lets a tombstone write mark
// a document deleted without discarding its fields.
func (s *Storage) Set(ctx context.Context, collection string, doc api.Document, merge bool) error {
	if merge {
		existing, err := s.Get(ctx, collection, doc.ID)
		if err != nil && !errors.Is(err, storage.ErrDocumentNotFound) {
			return fmt.Errorf("failed to read existing document: %w", err)
		}
		if existing != nil {
			doc = mergeDocuments(*existing, doc)
		}
	}

	query := `
		INSERT INTO documents (collection, id, owner_id, payload, version, last_modified, deleted, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET
			owner_id = excluded.owner_id,
			payload = excluded.payload,
			version = excluded.version,
			last_modified = excluded.last_modified,
			deleted = excluded.deleted,
			deleted_at = excluded.deleted_at
	`

	var deletedAt any
	if !doc.DeletedAt.IsZero() {
		deletedAt = doc.DeletedAt.UnixMilli()
	}

	_, err := s.db.ExecContext(ctx, query,
		collection,
		doc.ID,
		doc.OwnerID,
		[]byte(doc.Payload),
		doc.Version,
		doc.LastModified.UnixMilli(),
		boolToInt(doc.Deleted),
		deletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

// Delete removes a document row outright
func (s *Storage) Delete(ctx context.Context, collection, id string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = ? AND id = ?",
		collection, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrDocumentNotFound
	}

	return nil
}

// QueryByField returns documents matching the indexed field, newest first
func (s *Storage) QueryByField(ctx context.Context, collection, field, value, orderBy string) ([]api.Document, error) {
	if field != "owner_id" {
		return nil, storage.ErrUnsupportedField
	}

	var order string
	switch orderBy {
	case "", "last_modified":
		order = "last_modified DESC"
	case "date":
		// Game dates are RFC3339 strings inside the payload; they sort
		// chronologically as text.
		order = "json_extract(payload, '$.date') DESC"
	default:
		return nil, storage.ErrUnsupportedField
	}

	query := fmt.Sprintf(`
		SELECT id, owner_id, payload, version, last_modified, deleted, deleted_at
		FROM documents
		WHERE collection = ? AND owner_id = ?
		ORDER BY %s
	`, order)

	rows, err := s.db.QueryContext(ctx, query, collection, value)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []api.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}

	return docs, nil
}

// scanner covers both sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*api.Document, error) {
	doc := &api.Document{}
	var payload []byte
	var lastModified int64
	var deleted int
	var deletedAt sql.NullInt64

	err := row.Scan(
		&doc.ID,
		&doc.OwnerID,
		&payload,
		&doc.Version,
		&lastModified,
		&deleted,
		&deletedAt,
	)
	if err != nil {
		return nil, err
	}

	doc.Payload = json.RawMessage(payload)
	doc.LastModified = time.UnixMilli(lastModified).UTC()
	doc.Deleted = deleted != 0
	if deletedAt.Valid {
		doc.DeletedAt = time.UnixMilli(deletedAt.Int64).UTC()
	}

	return doc, nil
}

// mergeDocuments overlays the incoming document on the stored one
func mergeDocuments(existing, incoming api.Document) api.Document {
	merged := incoming

	if merged.OwnerID == "" {
		merged.OwnerID = existing.OwnerID
	}
	if merged.LastModified.IsZero() {
		merged.LastModified = existing.LastModified
	}
	merged.Payload = mergePayloads(existing.Payload, incoming.Payload)

	return merged
}

// mergePayloads shallow-merges the incoming JSON object over the existing
// one. A side that is not a JSON object falls back to whichever side is set.
func mergePayloads(existing, incoming json.RawMessage) json.RawMessage {
	if len(incoming) == 0 {
		return existing
	}
	if len(existing) == 0 {
		return incoming
	}

	var base, overlay map[string]json.RawMessage
	if err := json.Unmarshal(existing, &base); err != nil {
		return incoming
	}
	if err := json.Unmarshal(incoming, &overlay); err != nil {
		return incoming
	}

	for k, v := range overlay {
		base[k] = v
	}

	merged, err := json.Marshal(base)
	if err != nil {
		return incoming
	}
	return merged
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
