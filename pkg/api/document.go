// Package api defines the wire types of the document store API shared by the
// client and the reference server.
package api

import (
	"encoding/json"
	"time"
)

// Document is the envelope every stored document travels in. Payload carries
// the domain fields; the envelope carries what the sync protocol needs:
// owner, monotonic version, server modification time and the soft-delete
// tombstone.
type Document struct {
	LastModified time.Time       `json:"last_modified"`
	DeletedAt    time.Time       `json:"deleted_at,omitzero"`
	ID           string          `json:"id"`
	OwnerID      string          `json:"owner_id"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	Version      int64           `json:"version"`
	Deleted      bool            `json:"deleted"`
}

// QueryResponse is the server reply to a field query.
type QueryResponse struct {
	Documents []Document `json:"documents"`
}

// ErrorResponse is the JSON body returned with non-2xx statuses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
