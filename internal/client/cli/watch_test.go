package cli

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/statsync/internal/client/connectivity"
	"github.com/courtside/statsync/internal/client/remote"
	"github.com/courtside/statsync/internal/client/storage/boltdb"
	"github.com/courtside/statsync/internal/client/sync"
	"github.com/courtside/statsync/internal/models"
	"github.com/courtside/statsync/pkg/api"
)

// TestRunWatchDrainsOnRecovery wires the full watch-mode chain: the prober
// flips the tracker online, the watcher debounces the transition and drains
// the ledger.
func TestRunWatchDrainsOnRecovery(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC))
	logger := slog.New(slog.DiscardHandler)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bolt, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "client.db"), clock, logger)
	require.NoError(t, err)
	t.Cleanup(func() { bolt.Close() })

	store := &remote.StoreMock{
		GetDocumentFunc: func(ctx context.Context, collection, id string) (*api.Document, error) {
			return nil, remote.ErrDocumentNotFound
		},
		SetDocumentFunc: func(ctx context.Context, collection, id string, doc api.Document, merge bool) error {
			return nil
		},
	}
	manager := sync.NewManager(store, bolt, bolt, bolt, clock, logger)

	game := models.NewGame("g1", "coach-1", clock.Now(), models.TeamState{Name: "Hawks"}, models.TeamState{Name: "Bulls"}, clock.Now())
	require.NoError(t, bolt.SaveChange(ctx, &models.PendingChange{
		ID:         "g1",
		Collection: models.CollectionGames,
		Operation:  models.OpCreate,
		Payload:    game,
		Timestamp:  clock.Now(),
	}))

	tracker := connectivity.NewTracker(false)
	prober := connectivity.NewProber(func(ctx context.Context) bool {
		return true
	}, tracker, clock, logger)
	watcher := sync.NewWatcher(manager, tracker, clock, logger)

	var buf bytes.Buffer
	deps := Deps{Out: &buf, Manager: manager, Watcher: watcher, Prober: prober}

	done := make(chan error, 1)
	go func() {
		done <- RunWatch(ctx, deps, nil)
	}()

	// The watcher's check ticker and the prober's ticker.
	clock.BlockUntil(2)
	clock.Advance(connectivity.DefaultProbeInterval)

	// The recovery event starts the debounce timer.
	clock.BlockUntil(3)
	clock.Advance(sync.DefaultDebounce)

	require.Eventually(t, func() bool {
		count, err := bolt.CountChanges(ctx)
		return err == nil && count == 0
	}, time.Second, 5*time.Millisecond, "the probed recovery must trigger a drain")

	assert.NotEmpty(t, store.SetDocumentCalls())

	cancel()
	require.NoError(t, <-done, "cancellation is the normal exit")
	assert.Contains(t, buf.String(), "Watching")
}
