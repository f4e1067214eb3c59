// Package sync reconciles the pending-change ledger against the remote store.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/courtside/statsync/internal/client/conflict"
	"github.com/courtside/statsync/internal/client/remote"
	"github.com/courtside/statsync/internal/client/storage"
	"github.com/courtside/statsync/internal/models"
	"github.com/courtside/statsync/pkg/api"
)

// SyncInterval is how stale the last pass may get before the periodic check
// triggers another one.
const SyncInterval = time.Hour

// ErrDrainInProgress is returned by Drain when a pass is already running.
// Passes never overlap; a re-entrant trigger is a no-op.
var ErrDrainInProgress = errors.New("drain pass already in progress")

// Manager orchestrates a drain pass: it snapshots the ledger, fetches remote
// state per document, resolves conflicts and applies the winner to both the
// remote store and the local cache.
type Manager struct {
	remote remote.Store
	cache  storage.GameCache
	ledger storage.ChangeLedger
	meta   storage.SyncMetadata
	clock  clockwork.Clock
	logger *slog.Logger

	mu       sync.Mutex
	draining bool
}

// NewManager creates a new sync manager
func NewManager(store remote.Store, cache storage.GameCache, ledger storage.ChangeLedger, meta storage.SyncMetadata, clock clockwork.Clock, logger *slog.Logger) *Manager {
	return &Manager{
		remote: store,
		cache:  cache,
		ledger: ledger,
		meta:   meta,
		clock:  clock,
		logger: logger,
	}
}

// Result contains the counters of one drain pass
type Result struct {
	Attempted int // pending changes in the snapshot
	Applied   int // local-wins creates/updates pushed to the remote store
	Deleted   int // local-wins deletes tombstoned remotely
	Discarded int // server-wins, local payload dropped
	Failed    int // left in the ledger for the next pass
	Anomalies int // resolutions degraded for lack of any usable basis
}

// Drain runs one pass over a snapshot of the ledger. Each entry is attempted
// independently: a failing document stays in the ledger and never blocks the
// rest of the batch. The pass time is recorded even when some entries failed,
// so the hourly trigger cannot hot-loop on a permanently failing document.
func (m *Manager) Drain(ctx context.Context) (*Result, error) {
	m.mu.Lock()
	if m.draining {
		m.mu.Unlock()
		return nil, ErrDrainInProgress
	}
	m.draining = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.draining = false
		m.mu.Unlock()
	}()

	changes, err := m.ledger.ListChanges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot ledger: %w", err)
	}

	m.logger.Info("starting drain pass", "pending", len(changes))

	result := &Result{Attempted: len(changes)}

	for _, change := range changes {
		if err := m.drainOne(ctx, change, result); err != nil {
			m.logger.Warn("failed to drain pending change",
				"game_id", change.ID,
				"operation", change.Operation,
				"error", err)
			result.Failed++
		}
	}

	if err := m.meta.SaveLastSyncTime(ctx, m.clock.Now()); err != nil {
		m.logger.Warn("failed to record last sync time", "error", err)
	}

	m.logger.Info("drain pass finished",
		"attempted", result.Attempted,
		"applied", result.Applied,
		"deleted", result.Deleted,
		"discarded", result.Discarded,
		"failed", result.Failed)

	return result, nil
}

// drainOne reconciles a single pending change. The resolution memo is
// persisted before the ledger entry is removed, so a crash in between leaves
// a replayable state: the retried pass finds the memo and applies the same
// outcome.
func (m *Manager) drainOne(ctx context.Context, change *models.PendingChange, result *Result) error {
	remoteGame, err := m.fetchRemote(ctx, change)
	if err != nil {
		return err
	}

	prior, err := m.meta.GetResolution(ctx, change.ID)
	if err != nil && !errors.Is(err, storage.ErrResolutionNotFound) {
		return fmt.Errorf("failed to load resolution memo: %w", err)
	}

	resolution, rerr := conflict.Resolve(change, remoteGame, prior)
	if rerr != nil {
		m.logger.Warn("conflict resolution anomaly, defaulting to server",
			"game_id", change.ID, "error", rerr)
		result.Anomalies++
	}

	switch {
	case resolution == models.ResolutionLocal && change.Operation == models.OpDelete:
		if err := m.applyDelete(ctx, change, remoteGame); err != nil {
			return err
		}
		result.Deleted++

	case resolution == models.ResolutionLocal:
		if err := m.applyWrite(ctx, change, remoteGame); err != nil {
			return err
		}
		result.Applied++

	default:
		if err := m.applyServer(ctx, change, remoteGame); err != nil {
			return err
		}
		result.Discarded++
	}

	memo := &models.ConflictResolution{
		ID:         change.ID,
		Resolution: resolution,
		Timestamp:  m.clock.Now(),
	}
	if err := m.meta.SaveResolution(ctx, memo); err != nil {
		return fmt.Errorf("failed to save resolution memo: %w", err)
	}

	if err := m.ledger.RemoveChange(ctx, change.Collection, change.ID); err != nil {
		return fmt.Errorf("failed to remove pending change: %w", err)
	}

	return nil
}

// fetchRemote reads the current remote document, nil when it never existed
func (m *Manager) fetchRemote(ctx context.Context, change *models.PendingChange) (*models.Game, error) {
	doc, err := m.remote.GetDocument(ctx, change.Collection, change.ID)
	if err != nil {
		if errors.Is(err, remote.ErrDocumentNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("remote read failed: %w", err)
	}

	game, err := models.GameFromDocument(*doc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode remote document: %w", err)
	}
	return game, nil
}

// applyDelete marks the remote document deleted and evicts the cache entry.
// The tombstone is a soft delete so late-arriving reads from other devices
// observe the deletion instead of "not found".
func (m *Manager) applyDelete(ctx context.Context, change *models.PendingChange, remoteGame *models.Game) error {
	if remoteGame != nil {
		now := m.clock.Now()
		tombstone := api.Document{
			ID:           change.ID,
			Version:      remoteGame.Version + 1,
			LastModified: now,
			Deleted:      true,
			DeletedAt:    now,
		}
		if err := m.remote.SetDocument(ctx, change.Collection, change.ID, tombstone, true); err != nil {
			return fmt.Errorf("remote tombstone write failed: %w", err)
		}
	}

	if err := m.cache.Remove(ctx, change.ID); err != nil {
		return fmt.Errorf("failed to evict cache entry: %w", err)
	}
	return nil
}

// applyWrite pushes the local payload with the next monotonic version and
// refreshes the cache with the written state
func (m *Manager) applyWrite(ctx context.Context, change *models.PendingChange, remoteGame *models.Game) error {
	if change.Payload == nil {
		return fmt.Errorf("pending %s for %s has no payload", change.Operation, change.ID)
	}

	var remoteVersion int64
	if remoteGame != nil {
		remoteVersion = remoteGame.Version
	}

	game := change.Payload.Clone()
	game.Version = remoteVersion + 1
	game.LastModified = m.clock.Now()
	game.Deleted = false
	game.DeletedAt = time.Time{}

	doc, err := game.Document()
	if err != nil {
		return err
	}

	if err := m.remote.SetDocument(ctx, change.Collection, game.ID, doc, true); err != nil {
		return fmt.Errorf("remote write failed: %w", err)
	}

	if err := m.cache.Put(ctx, game); err != nil {
		return fmt.Errorf("failed to refresh cache: %w", err)
	}
	return nil
}

// applyServer discards the local payload and corrects the cache with the
// server document, the client's optimistic state having lost
func (m *Manager) applyServer(ctx context.Context, change *models.PendingChange, remoteGame *models.Game) error {
	if remoteGame == nil {
		return nil
	}

	if remoteGame.Deleted {
		if err := m.cache.Remove(ctx, change.ID); err != nil {
			return fmt.Errorf("failed to evict cache entry: %w", err)
		}
		return nil
	}

	if err := m.cache.Put(ctx, remoteGame); err != nil {
		return fmt.Errorf("failed to overwrite cache: %w", err)
	}
	return nil
}

// PendingCount returns the number of changes awaiting a drain pass
func (m *Manager) PendingCount(ctx context.Context) (int, error) {
	return m.ledger.CountChanges(ctx)
}

// LastSyncTime returns when the last drain pass finished
func (m *Manager) LastSyncTime(ctx context.Context) (time.Time, error) {
	return m.meta.LastSyncTime(ctx)
}

// NeedsSync reports whether a pass should run now, per the ShouldSync
// predicate over the stored bookkeeping.
func (m *Manager) NeedsSync(ctx context.Context) (bool, error) {
	lastSync, err := m.meta.LastSyncTime(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read last sync time: %w", err)
	}
	pending, err := m.ledger.CountChanges(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count pending changes: %w", err)
	}
	return ShouldSync(lastSync, m.clock.Now(), pending), nil
}

// ShouldSync is the pure trigger predicate: a pass is due when anything is
// pending, or when the last pass is older than the sync interval.
func ShouldSync(lastSync, now time.Time, pending int) bool {
	return pending > 0 || now.Sub(lastSync) > SyncInterval
}
