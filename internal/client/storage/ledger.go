package storage

import (
	"context"

	"github.com/courtside/statsync/internal/models"
)

//go:generate moq -out changeledger_mock.go . ChangeLedger

// ChangeLedger defines the durable, ordered queue of uncommitted local
// mutations. It is the only record of an offline write surviving a process
// kill, so every write must be durable before the call returns.
type ChangeLedger interface {
	// SaveChange stores a pending change, replacing any existing change for the
	// same (collection, id) pair so the ledger holds the latest local intent.
	SaveChange(ctx context.Context, change *models.PendingChange) error

	// ListChanges returns all pending changes in insertion order.
	// An unparseable record is dropped from the ledger and skipped; it
	// never aborts the listing.
	ListChanges(ctx context.Context) ([]*models.PendingChange, error)

	// RemoveChange deletes the pending change for the (collection, id) pair.
	// Removing an absent change is not an error.
	RemoveChange(ctx context.Context, collection, id string) error

	// CountChanges returns the number of pending changes ListChanges would
	// return, excluding unparseable records.
	CountChanges(ctx context.Context) (int, error)

	// ClearChanges removes all pending changes.
	ClearChanges(ctx context.Context) error
}
