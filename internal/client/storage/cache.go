package storage

import (
	"context"
	"time"

	"github.com/courtside/statsync/internal/models"
)

//go:generate moq -out gamecache_mock.go . GameCache

// CacheExpiry is the age past which a cached entry is treated as absent.
const CacheExpiry = 24 * time.Hour

// GameCache defines the durable local cache of game snapshots. It is the
// source of truth while offline. A cache miss is a normal outcome, never an
// error condition beyond the ErrGameNotFound sentinel: callers fall back to
// the remote store or degrade.
type GameCache interface {
	// Put stores a game snapshot, stamping it with the current time.
	// The write is durable before Put returns.
	Put(ctx context.Context, game *models.Game) error

	// Get retrieves a cached game by ID.
	// Returns ErrGameNotFound when no entry exists or the entry is older
	// than the expiry window; an expired entry is purged as a side effect.
	Get(ctx context.Context, id string) (*models.Game, error)

	// Remove evicts a cached game. Removing an absent entry is not an error.
	Remove(ctx context.Context, id string) error

	// PutOwnerGames stores the list of an owner's games as one entry.
	PutOwnerGames(ctx context.Context, ownerID string, games []*models.Game) error

	// GetOwnerGames retrieves an owner's cached game list.
	// Same expiry semantics as Get.
	GetOwnerGames(ctx context.Context, ownerID string) ([]*models.Game, error)

	// Clear removes all cached games and owner lists.
	Clear(ctx context.Context) error
}
