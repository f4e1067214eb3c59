// Package repo is the façade the rest of the app uses to read and mutate
// games. Every operation routes at call time: straight to the remote store
// when online, to the local cache plus the pending-change ledger when
// offline. No operation ever blocks on a sync pass.
package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/courtside/statsync/internal/client/connectivity"
	"github.com/courtside/statsync/internal/client/remote"
	"github.com/courtside/statsync/internal/client/storage"
	"github.com/courtside/statsync/internal/models"
)

// TempIDPrefix marks ids synthesized for offline-created games.
const TempIDPrefix = "tmp_"

var (
	// ErrNotFound indicates the game exists neither remotely nor in cache
	ErrNotFound = errors.New("game not found")

	// ErrNotFoundOffline indicates a cache miss while the device is offline;
	// the game may well exist remotely but cannot be reached
	ErrNotFoundOffline = errors.New("game not available offline")
)

//go:generate moq -out repository_mock.go . Repository

// Repository defines the game operations exposed to the rest of the app.
// These are the only entry points allowed to mutate or read synchronized
// games.
type Repository interface {
	// Create makes a new scheduled game and returns its id. Offline creation
	// returns a synthetic id that becomes the game's permanent id once the
	// create is synced; the server only assigns version and lastModified.
	Create(ctx context.Context, params CreateGameParams) (string, error)

	// Update applies a partial update to a game.
	Update(ctx context.Context, id string, update GameUpdate) error

	// Delete removes a game. The cache entry goes away immediately; remote
	// confirmation may follow later via the sync pass.
	Delete(ctx context.Context, id string) error

	// Get returns a game, reading through the cache before the remote store.
	// Returns ErrNotFoundOffline on a cache miss while offline.
	Get(ctx context.Context, id string) (*models.Game, error)

	// ListByOwner returns an owner's games. A cache miss while offline
	// degrades to an empty list, never an error.
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Game, error)
}

// CreateGameParams is the caller-supplied portion of a new game.
type CreateGameParams struct {
	Date     time.Time
	OwnerID  string
	HomeTeam models.TeamState
	AwayTeam models.TeamState
}

// GameUpdate is a partial game mutation; nil fields are left untouched.
type GameUpdate struct {
	Date          *time.Time
	Status        *models.GameStatus
	HomeTeam      *models.TeamState
	AwayTeam      *models.TeamState
	HomeScore     *int
	AwayScore     *int
	ShotClock     *models.ShotClock
	QuarterStats  []models.QuarterLine
	Quarter       *int
	TimeRemaining *int
}

// apply merges the update into the game in place
func (u GameUpdate) apply(g *models.Game) {
	if u.Date != nil {
		g.Date = *u.Date
	}
	if u.Status != nil {
		g.Status = *u.Status
	}
	if u.HomeTeam != nil {
		g.HomeTeam = *u.HomeTeam
	}
	if u.AwayTeam != nil {
		g.AwayTeam = *u.AwayTeam
	}
	if u.HomeScore != nil {
		g.HomeTeam.Score = *u.HomeScore
	}
	if u.AwayScore != nil {
		g.AwayTeam.Score = *u.AwayScore
	}
	if u.ShotClock != nil {
		g.ShotClock = *u.ShotClock
	}
	if u.QuarterStats != nil {
		g.QuarterStats = u.QuarterStats
	}
	if u.Quarter != nil {
		g.Quarter = *u.Quarter
	}
	if u.TimeRemaining != nil {
		g.TimeRemaining = *u.TimeRemaining
	}
}

// repository routes operations between the remote store and local state
type repository struct {
	remote   remote.Store
	cache    storage.GameCache
	ledger   storage.ChangeLedger
	meta     storage.SyncMetadata
	observer connectivity.Observer
	clock    clockwork.Clock
	logger   *slog.Logger
}

// NewRepository creates a new game repository
func NewRepository(store remote.Store, cache storage.GameCache, ledger storage.ChangeLedger, meta storage.SyncMetadata, observer connectivity.Observer, clock clockwork.Clock, logger *slog.Logger) Repository {
	return &repository{
		remote:   store,
		cache:    cache,
		ledger:   ledger,
		meta:     meta,
		observer: observer,
		clock:    clock,
		logger:   logger,
	}
}

// Create makes a new scheduled game
func (r *repository) Create(ctx context.Context, params CreateGameParams) (string, error) {
	now := r.clock.Now()

	if !r.observer.Online() {
		id := TempIDPrefix + uuid.New().String()
		game := models.NewGame(id, params.OwnerID, params.Date, params.HomeTeam, params.AwayTeam, now)

		if err := r.cache.Put(ctx, game); err != nil {
			return "", fmt.Errorf("failed to cache game: %w", err)
		}
		if err := r.enqueue(ctx, &models.PendingChange{
			ID:         id,
			Collection: models.CollectionGames,
			Operation:  models.OpCreate,
			Payload:    game,
			Timestamp:  now,
		}); err != nil {
			return "", err
		}

		r.logger.Info("game created offline", "game_id", id, "owner_id", params.OwnerID)
		return id, nil
	}

	id := uuid.New().String()
	game := models.NewGame(id, params.OwnerID, params.Date, params.HomeTeam, params.AwayTeam, now)

	doc, err := game.Document()
	if err != nil {
		return "", err
	}
	if err := r.remote.SetDocument(ctx, models.CollectionGames, id, doc, false); err != nil {
		return "", fmt.Errorf("failed to create game remotely: %w", err)
	}
	if err := r.cache.Put(ctx, game); err != nil {
		r.logger.Warn("failed to cache created game", "game_id", id, "error", err)
	}

	return id, nil
}

// Update applies a partial update to a game
func (r *repository) Update(ctx context.Context, id string, update GameUpdate) error {
	now := r.clock.Now()

	if !r.observer.Online() {
		cached, err := r.cache.Get(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrGameNotFound) {
				return ErrNotFoundOffline
			}
			return fmt.Errorf("failed to read cached game: %w", err)
		}

		capturedVersion := cached.Version

		game := cached.Clone()
		update.apply(game)
		game.Version = capturedVersion + 1
		game.LastModified = now

		if err := r.cache.Put(ctx, game); err != nil {
			return fmt.Errorf("failed to cache updated game: %w", err)
		}
		if err := r.enqueue(ctx, &models.PendingChange{
			ID:              id,
			Collection:      models.CollectionGames,
			Operation:       models.OpUpdate,
			Payload:         game,
			CapturedVersion: capturedVersion,
			Timestamp:       now,
		}); err != nil {
			return err
		}
		return nil
	}

	doc, err := r.remote.GetDocument(ctx, models.CollectionGames, id)
	if err != nil {
		if errors.Is(err, remote.ErrDocumentNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read remote game: %w", err)
	}
	current, err := models.GameFromDocument(*doc)
	if err != nil {
		return fmt.Errorf("failed to decode remote game: %w", err)
	}
	if current.Deleted {
		return ErrNotFound
	}

	game := current.Clone()
	update.apply(game)
	game.Version = current.Version + 1
	game.LastModified = now

	updated, err := game.Document()
	if err != nil {
		return err
	}
	if err := r.remote.SetDocument(ctx, models.CollectionGames, id, updated, true); err != nil {
		return fmt.Errorf("failed to update game remotely: %w", err)
	}
	if err := r.cache.Put(ctx, game); err != nil {
		r.logger.Warn("failed to refresh cache after update", "game_id", id, "error", err)
	}

	return nil
}

// Delete removes a game. Deletes are visually final: the cache entry goes
// away even before remote confirmation.
func (r *repository) Delete(ctx context.Context, id string) error {
	if !r.observer.Online() {
		var capturedVersion int64
		if cached, err := r.cache.Get(ctx, id); err == nil {
			capturedVersion = cached.Version
		}

		if err := r.cache.Remove(ctx, id); err != nil {
			return fmt.Errorf("failed to evict cached game: %w", err)
		}
		if err := r.enqueue(ctx, &models.PendingChange{
			ID:              id,
			Collection:      models.CollectionGames,
			Operation:       models.OpDelete,
			CapturedVersion: capturedVersion,
			Timestamp:       r.clock.Now(),
		}); err != nil {
			return err
		}
		return nil
	}

	if err := r.remote.DeleteDocument(ctx, models.CollectionGames, id); err != nil && !errors.Is(err, remote.ErrDocumentNotFound) {
		return fmt.Errorf("failed to delete game remotely: %w", err)
	}
	if err := r.cache.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to evict cached game: %w", err)
	}

	return nil
}

// Get returns a game, cache first, remote on a miss
func (r *repository) Get(ctx context.Context, id string) (*models.Game, error) {
	cached, err := r.cache.Get(ctx, id)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, storage.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to read cached game: %w", err)
	}

	if !r.observer.Online() {
		return nil, ErrNotFoundOffline
	}

	doc, err := r.remote.GetDocument(ctx, models.CollectionGames, id)
	if err != nil {
		if errors.Is(err, remote.ErrDocumentNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch game: %w", err)
	}
	game, err := models.GameFromDocument(*doc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode game: %w", err)
	}
	if game.Deleted {
		return nil, ErrNotFound
	}

	if err := r.cache.Put(ctx, game); err != nil {
		r.logger.Warn("failed to cache fetched game", "game_id", id, "error", err)
	}

	return game, nil
}

// ListByOwner returns an owner's games, newest first
func (r *repository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Game, error) {
	cached, err := r.cache.GetOwnerGames(ctx, ownerID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, storage.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to read cached games: %w", err)
	}

	if !r.observer.Online() {
		return []*models.Game{}, nil
	}

	docs, err := r.remote.QueryByField(ctx, models.CollectionGames, "owner_id", ownerID, "date")
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}

	games := make([]*models.Game, 0, len(docs))
	for _, doc := range docs {
		game, err := models.GameFromDocument(doc)
		if err != nil {
			r.logger.Warn("skipping undecodable game document", "game_id", doc.ID, "error", err)
			continue
		}
		if game.Deleted {
			continue
		}
		games = append(games, game)
	}

	if err := r.cache.PutOwnerGames(ctx, ownerID, games); err != nil {
		r.logger.Warn("failed to cache owner games", "owner_id", ownerID, "error", err)
	}

	return games, nil
}

// enqueue records a pending change, which is the latest local intent for the
// document: any memo from a previously settled conflict no longer applies.
func (r *repository) enqueue(ctx context.Context, change *models.PendingChange) error {
	if err := r.meta.RemoveResolution(ctx, change.ID); err != nil {
		r.logger.Warn("failed to clear stale resolution memo", "game_id", change.ID, "error", err)
	}
	if err := r.ledger.SaveChange(ctx, change); err != nil {
		return fmt.Errorf("failed to enqueue pending change: %w", err)
	}
	return nil
}
