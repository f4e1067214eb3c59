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

	"github.com/courtside/statsync/internal/client/remote"
	"github.com/courtside/statsync/internal/client/storage/boltdb"
	"github.com/courtside/statsync/internal/client/sync"
	"github.com/courtside/statsync/internal/models"
	"github.com/courtside/statsync/pkg/api"
)

func testManager(t *testing.T) (*sync.Manager, *boltdb.Storage) {
	t.Helper()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC))
	logger := slog.New(slog.DiscardHandler)

	bolt, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"), clock, logger)
	require.NoError(t, err)
	t.Cleanup(func() { bolt.Close() })

	store := &remote.StoreMock{
		GetDocumentFunc: func(ctx context.Context, collection, id string) (*api.Document, error) {
			return nil, remote.ErrDocumentNotFound
		},
	}

	return sync.NewManager(store, bolt, bolt, bolt, clock, logger), bolt
}

func TestRunStatusNeverSynced(t *testing.T) {
	manager, bolt := testManager(t)
	ctx := context.Background()

	require.NoError(t, bolt.SaveChange(ctx, &models.PendingChange{
		ID:         "g1",
		Collection: models.CollectionGames,
		Operation:  models.OpDelete,
	}))

	var buf bytes.Buffer
	deps := Deps{Out: &buf, Manager: manager, OwnerID: "coach-1"}

	require.NoError(t, RunStatus(ctx, deps, nil))
	out := buf.String()
	assert.Contains(t, out, "Pending changes: 1")
	assert.Contains(t, out, "Last synced: never")
}

func TestRunSyncEmptyLedger(t *testing.T) {
	manager, _ := testManager(t)

	var buf bytes.Buffer
	deps := Deps{Out: &buf, Manager: manager, OwnerID: "coach-1"}

	require.NoError(t, RunSync(context.Background(), deps, nil))
	assert.Contains(t, buf.String(), "attempted: 0")
}
