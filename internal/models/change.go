package models

import "time"

// CollectionGames is the remote collection holding game documents.
const CollectionGames = "games"

// Operation is the kind of local mutation recorded in the pending-change
// ledger.
type Operation string

// Operation values
const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// PendingChange is a queued local mutation awaiting reconciliation with the
// remote store. At most one pending change exists per (collection, id): a
// newer local mutation replaces the ledger entry so the ledger always holds
// the latest local intent, not a log of every edit.
type PendingChange struct {
	Timestamp  time.Time `json:"timestamp"`
	ID         string    `json:"id"`
	Collection string    `json:"collection"`
	Operation  Operation `json:"operation"`
	Payload    *Game     `json:"payload,omitempty"` // nil for deletes
	// CapturedVersion is the remote version the client had observed when the
	// mutation was made, 0 when unknown (offline-created documents).
	CapturedVersion int64 `json:"captured_version"`
}

// Resolution is the outcome of conflict resolution for one document.
type Resolution string

// Resolution values
const (
	ResolutionLocal  Resolution = "local"
	ResolutionServer Resolution = "server"
)

// ConflictResolution is a memo of how a document's conflict was last decided.
// It is persisted before the pending change is removed so a sync pass
// interrupted mid-entry replays to the same outcome.
type ConflictResolution struct {
	Timestamp  time.Time  `json:"timestamp"`
	ID         string     `json:"id"`
	Resolution Resolution `json:"resolution"`
}
