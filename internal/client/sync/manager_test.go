package sync

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	stdsync "sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/statsync/internal/client/remote"
	"github.com/courtside/statsync/internal/client/storage"
	"github.com/courtside/statsync/internal/client/storage/boltdb"
	"github.com/courtside/statsync/internal/models"
	"github.com/courtside/statsync/pkg/api"
)

// fakeRemote is an in-memory document store behind a StoreMock, close enough
// to the server's merge semantics for drain tests.
type fakeRemote struct {
	mu   stdsync.Mutex
	docs map[string]api.Document
}

func newFakeRemote() (*fakeRemote, *remote.StoreMock) {
	f := &fakeRemote{docs: make(map[string]api.Document)}

	mock := &remote.StoreMock{
		GetDocumentFunc: func(ctx context.Context, collection, id string) (*api.Document, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			doc, ok := f.docs[collection+"/"+id]
			if !ok {
				return nil, remote.ErrDocumentNotFound
			}
			return &doc, nil
		},
		SetDocumentFunc: func(ctx context.Context, collection, id string, doc api.Document, merge bool) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			key := collection + "/" + id
			if existing, ok := f.docs[key]; ok && merge {
				if len(doc.Payload) == 0 {
					doc.Payload = existing.Payload
				}
				if doc.OwnerID == "" {
					doc.OwnerID = existing.OwnerID
				}
			}
			f.docs[key] = doc
			return nil
		},
		DeleteDocumentFunc: func(ctx context.Context, collection, id string) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.docs, collection+"/"+id)
			return nil
		},
		QueryByFieldFunc: func(ctx context.Context, collection, field, value, orderBy string) ([]api.Document, error) {
			return nil, nil
		},
	}

	return f, mock
}

func (f *fakeRemote) put(t *testing.T, game *models.Game) {
	t.Helper()
	doc, err := game.Document()
	require.NoError(t, err)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[models.CollectionGames+"/"+game.ID] = doc
}

func (f *fakeRemote) get(t *testing.T, id string) *models.Game {
	t.Helper()
	f.mu.Lock()
	doc, ok := f.docs[models.CollectionGames+"/"+id]
	f.mu.Unlock()
	require.True(t, ok, "document %s missing remotely", id)
	game, err := models.GameFromDocument(doc)
	require.NoError(t, err)
	return game
}

func newTestManager(t *testing.T, store remote.Store) (*Manager, *boltdb.Storage, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC))
	logger := slog.New(slog.DiscardHandler)

	bolt, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"), clock, logger)
	require.NoError(t, err)
	t.Cleanup(func() { bolt.Close() })

	return NewManager(store, bolt, bolt, bolt, clock, logger), bolt, clock
}

func pendingUpdate(id string, capturedVersion int64, game *models.Game, ts time.Time) *models.PendingChange {
	return &models.PendingChange{
		ID:              id,
		Collection:      models.CollectionGames,
		Operation:       models.OpUpdate,
		Payload:         game,
		CapturedVersion: capturedVersion,
		Timestamp:       ts,
	}
}

func syncTestGame(id string, version int64, homeScore int) *models.Game {
	return &models.Game{
		ID:       id,
		OwnerID:  "coach-1",
		Status:   models.StatusInProgress,
		HomeTeam: models.TeamState{Name: "Hawks", Score: homeScore},
		AwayTeam: models.TeamState{Name: "Bulls", Score: 40},
		Quarter:  3,
		Version:  version,
	}
}

func TestDrainCreate(t *testing.T) {
	f, mock := newFakeRemote()
	m, bolt, clock := newTestManager(t, mock)
	ctx := context.Background()

	game := syncTestGame("tmp_abc", 1, 10)
	require.NoError(t, bolt.SaveChange(ctx, &models.PendingChange{
		ID:         game.ID,
		Collection: models.CollectionGames,
		Operation:  models.OpCreate,
		Payload:    game,
		Timestamp:  clock.Now(),
	}))

	result, err := m.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Attempted)
	assert.Equal(t, 1, result.Applied)
	assert.Zero(t, result.Failed)

	pushed := f.get(t, "tmp_abc")
	assert.EqualValues(t, 1, pushed.Version, "first remote write gets version 1")
	assert.Equal(t, 10, pushed.HomeTeam.Score)

	count, err := bolt.CountChanges(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "drained change leaves the ledger")

	memo, err := bolt.GetResolution(ctx, "tmp_abc")
	require.NoError(t, err)
	assert.Equal(t, models.ResolutionLocal, memo.Resolution)

	last, err := m.LastSyncTime(ctx)
	require.NoError(t, err)
	assert.True(t, clock.Now().Equal(last))
}

func TestDrainLocalWinsBumpsRemoteVersion(t *testing.T) {
	f, mock := newFakeRemote()
	m, bolt, clock := newTestManager(t, mock)
	ctx := context.Background()

	f.put(t, syncTestGame("g1", 3, 20))

	local := syncTestGame("g1", 4, 25)
	local.LastModified = clock.Now()
	require.NoError(t, bolt.SaveChange(ctx, pendingUpdate("g1", 3, local, clock.Now().Add(time.Minute))))

	result, err := m.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Applied)

	pushed := f.get(t, "g1")
	assert.EqualValues(t, 4, pushed.Version, "winner takes remote version + 1")
	assert.Equal(t, 25, pushed.HomeTeam.Score)

	cached, err := bolt.Get(ctx, "g1")
	require.NoError(t, err)
	assert.EqualValues(t, 4, cached.Version)
}

func TestDrainServerWinsOnStaleCapture(t *testing.T) {
	f, mock := newFakeRemote()
	m, bolt, clock := newTestManager(t, mock)
	ctx := context.Background()

	// Another device already flushed version 4; this client captured 3.
	f.put(t, syncTestGame("g1", 4, 50))

	local := syncTestGame("g1", 4, 25)
	require.NoError(t, bolt.SaveChange(ctx, pendingUpdate("g1", 3, local, clock.Now().Add(time.Hour))))

	result, err := m.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Discarded)
	assert.Zero(t, result.Applied)

	kept := f.get(t, "g1")
	assert.EqualValues(t, 4, kept.Version, "losing payload never reaches the remote store")
	assert.Equal(t, 50, kept.HomeTeam.Score)

	cached, err := bolt.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 50, cached.HomeTeam.Score, "cache corrected to the server copy")

	memo, err := bolt.GetResolution(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, models.ResolutionServer, memo.Resolution)
}

func TestDrainDeleteTombstones(t *testing.T) {
	f, mock := newFakeRemote()
	m, bolt, clock := newTestManager(t, mock)
	ctx := context.Background()

	f.put(t, syncTestGame("g1", 5, 30))
	require.NoError(t, bolt.Put(ctx, syncTestGame("g1", 5, 30)))

	require.NoError(t, bolt.SaveChange(ctx, &models.PendingChange{
		ID:              "g1",
		Collection:      models.CollectionGames,
		Operation:       models.OpDelete,
		CapturedVersion: 5,
		Timestamp:       clock.Now(),
	}))

	result, err := m.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Deleted)

	tombstone := f.get(t, "g1")
	assert.True(t, tombstone.Deleted)
	assert.EqualValues(t, 6, tombstone.Version)
	assert.False(t, tombstone.DeletedAt.IsZero())
	assert.Equal(t, 30, tombstone.HomeTeam.Score, "merge write keeps the payload under the tombstone")

	_, err = bolt.Get(ctx, "g1")
	require.ErrorIs(t, err, storage.ErrGameNotFound)
}

func TestDrainDeleteWinsOverNewerRemote(t *testing.T) {
	f, mock := newFakeRemote()
	m, bolt, clock := newTestManager(t, mock)
	ctx := context.Background()

	// The remote copy moved on to version 9 after this client queued the
	// delete at version 5. The delete still wins.
	f.put(t, syncTestGame("g1", 9, 80))

	require.NoError(t, bolt.SaveChange(ctx, &models.PendingChange{
		ID:              "g1",
		Collection:      models.CollectionGames,
		Operation:       models.OpDelete,
		CapturedVersion: 5,
		Timestamp:       clock.Now(),
	}))

	result, err := m.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Deleted)
	assert.Zero(t, result.Discarded)

	tombstone := f.get(t, "g1")
	assert.True(t, tombstone.Deleted)
	assert.EqualValues(t, 10, tombstone.Version)
}

func TestDrainDeleteWithNoRemote(t *testing.T) {
	_, mock := newFakeRemote()
	m, bolt, clock := newTestManager(t, mock)
	ctx := context.Background()

	require.NoError(t, bolt.SaveChange(ctx, &models.PendingChange{
		ID:         "tmp_gone",
		Collection: models.CollectionGames,
		Operation:  models.OpDelete,
		Timestamp:  clock.Now(),
	}))

	result, err := m.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Deleted)
	assert.Empty(t, mock.SetDocumentCalls(), "nothing to tombstone when the document never existed")
}

func TestDrainServerTombstoneEvictsCache(t *testing.T) {
	f, mock := newFakeRemote()
	m, bolt, clock := newTestManager(t, mock)
	ctx := context.Background()

	deleted := syncTestGame("g1", 7, 0)
	deleted.Deleted = true
	deleted.DeletedAt = clock.Now().Add(-time.Minute)
	f.put(t, deleted)

	require.NoError(t, bolt.Put(ctx, syncTestGame("g1", 2, 15)))
	require.NoError(t, bolt.SaveChange(ctx, pendingUpdate("g1", 2, syncTestGame("g1", 3, 18), clock.Now())))

	result, err := m.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Discarded)

	_, err = bolt.Get(ctx, "g1")
	require.ErrorIs(t, err, storage.ErrGameNotFound, "deletion from another device evicts the local copy")
}

func TestDrainMemoReplaysAfterCrash(t *testing.T) {
	f, mock := newFakeRemote()
	m, bolt, clock := newTestManager(t, mock)
	ctx := context.Background()

	// A previous pass decided local-wins and crashed after persisting the
	// memo but before clearing the ledger. The remote version moved on in
	// between; the retried pass must still apply the settled outcome.
	f.put(t, syncTestGame("g1", 9, 60))
	require.NoError(t, bolt.SaveResolution(ctx, &models.ConflictResolution{
		ID:         "g1",
		Resolution: models.ResolutionLocal,
		Timestamp:  clock.Now().Add(-time.Minute),
	}))
	require.NoError(t, bolt.SaveChange(ctx, pendingUpdate("g1", 3, syncTestGame("g1", 4, 25), clock.Now().Add(-time.Minute))))

	result, err := m.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Applied, "memo overrides the version comparison")

	pushed := f.get(t, "g1")
	assert.Equal(t, 25, pushed.HomeTeam.Score)
	assert.EqualValues(t, 10, pushed.Version)
}

func TestDrainFailureIsolation(t *testing.T) {
	f, mock := newFakeRemote()
	getDoc := mock.GetDocumentFunc
	mock.GetDocumentFunc = func(ctx context.Context, collection, id string) (*api.Document, error) {
		if id == "g1" {
			return nil, errors.New("connection reset")
		}
		return getDoc(ctx, collection, id)
	}

	m, bolt, clock := newTestManager(t, mock)
	ctx := context.Background()

	require.NoError(t, bolt.SaveChange(ctx, pendingUpdate("g1", 0, syncTestGame("g1", 1, 5), clock.Now())))
	require.NoError(t, bolt.SaveChange(ctx, pendingUpdate("g2", 0, syncTestGame("g2", 1, 7), clock.Now())))

	result, err := m.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Applied)

	changes, err := bolt.ListChanges(ctx)
	require.NoError(t, err)
	require.Len(t, changes, 1, "the failing change stays queued for the next pass")
	assert.Equal(t, "g1", changes[0].ID)

	f.get(t, "g2")

	last, err := m.LastSyncTime(ctx)
	require.NoError(t, err)
	assert.False(t, last.IsZero(), "pass time recorded despite the failure")
}

func TestDrainAnomalyDefaultsToServer(t *testing.T) {
	f, mock := newFakeRemote()
	m, bolt, _ := newTestManager(t, mock)
	ctx := context.Background()

	f.put(t, syncTestGame("g1", 0, 12))

	require.NoError(t, bolt.SaveChange(ctx, &models.PendingChange{
		ID:         "g1",
		Collection: models.CollectionGames,
		Operation:  models.OpUpdate,
		Payload:    syncTestGame("g1", 0, 99),
	}))

	result, err := m.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Anomalies)
	assert.Equal(t, 1, result.Discarded)
}

func TestDrainReentrant(t *testing.T) {
	_, mock := newFakeRemote()

	entered := make(chan struct{})
	release := make(chan struct{})
	var once stdsync.Once
	mock.GetDocumentFunc = func(ctx context.Context, collection, id string) (*api.Document, error) {
		once.Do(func() { close(entered) })
		<-release
		return nil, remote.ErrDocumentNotFound
	}

	m, bolt, clock := newTestManager(t, mock)
	ctx := context.Background()

	require.NoError(t, bolt.SaveChange(ctx, pendingUpdate("g1", 0, syncTestGame("g1", 1, 5), clock.Now())))

	done := make(chan error, 1)
	go func() {
		_, err := m.Drain(ctx)
		done <- err
	}()

	<-entered
	_, err := m.Drain(ctx)
	require.ErrorIs(t, err, ErrDrainInProgress)

	close(release)
	require.NoError(t, <-done)
}

func TestDrainEmptyLedger(t *testing.T) {
	_, mock := newFakeRemote()
	m, _, clock := newTestManager(t, mock)
	ctx := context.Background()

	result, err := m.Drain(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Attempted)
	assert.Empty(t, mock.GetDocumentCalls())

	last, err := m.LastSyncTime(ctx)
	require.NoError(t, err)
	assert.True(t, clock.Now().Equal(last), "an empty pass still counts as a sync")
}

func TestShouldSync(t *testing.T) {
	now := time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lastSync time.Time
		pending  int
		want     bool
	}{
		{"pending work trumps a fresh sync", now.Add(-time.Minute), 3, true},
		{"nothing pending, recent sync", now.Add(-time.Minute), 0, false},
		{"nothing pending, stale sync", now.Add(-2 * time.Hour), 0, true},
		{"exactly at the interval", now.Add(-SyncInterval), 0, false},
		{"never synced", time.Time{}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldSync(tt.lastSync, now, tt.pending))
		})
	}
}

func TestNeedsSync(t *testing.T) {
	_, mock := newFakeRemote()
	m, bolt, clock := newTestManager(t, mock)
	ctx := context.Background()

	needs, err := m.NeedsSync(ctx)
	require.NoError(t, err)
	assert.True(t, needs, "a client that never synced is due")

	require.NoError(t, bolt.SaveLastSyncTime(ctx, clock.Now()))
	needs, err = m.NeedsSync(ctx)
	require.NoError(t, err)
	assert.False(t, needs)

	require.NoError(t, bolt.SaveChange(ctx, pendingUpdate("g1", 0, syncTestGame("g1", 1, 5), clock.Now())))
	needs, err = m.NeedsSync(ctx)
	require.NoError(t, err)
	assert.True(t, needs)
}
