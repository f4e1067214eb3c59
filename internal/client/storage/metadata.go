package storage

import (
	"context"
	"time"

	"github.com/courtside/statsync/internal/models"
)

//go:generate moq -out syncmetadata_mock.go . SyncMetadata

// SyncMetadata defines storage for sync bookkeeping: the last sync time and
// the conflict-resolution memos consulted by retried passes.
type SyncMetadata interface {
	// SaveLastSyncTime records when the last drain pass finished.
	SaveLastSyncTime(ctx context.Context, t time.Time) error

	// LastSyncTime returns when the last drain pass finished.
	// Returns the zero time if no pass has ever run.
	LastSyncTime(ctx context.Context) (time.Time, error)

	// SaveResolution persists a conflict resolution memo for a document.
	SaveResolution(ctx context.Context, res *models.ConflictResolution) error

	// GetResolution retrieves the memo for a document.
	// Returns ErrResolutionNotFound if none exists.
	GetResolution(ctx context.Context, id string) (*models.ConflictResolution, error)

	// RemoveResolution deletes the memo for a document. Removing an absent
	// memo is not an error.
	RemoveResolution(ctx context.Context, id string) error
}
