package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/statsync/internal/client/storage"
	"github.com/courtside/statsync/internal/models"
)

func TestLastSyncTimeRoundTrip(t *testing.T) {
	s, clock := createTestStorage(t)
	ctx := context.Background()

	last, err := s.LastSyncTime(ctx)
	require.NoError(t, err)
	assert.True(t, last.IsZero(), "never-synced reads as the zero time")

	now := clock.Now()
	require.NoError(t, s.SaveLastSyncTime(ctx, now))

	last, err = s.LastSyncTime(ctx)
	require.NoError(t, err)
	assert.True(t, now.Equal(last))
}

func TestResolutionMemoRoundTrip(t *testing.T) {
	s, _ := createTestStorage(t)
	ctx := context.Background()

	_, err := s.GetResolution(ctx, "g1")
	require.ErrorIs(t, err, storage.ErrResolutionNotFound)

	memo := &models.ConflictResolution{
		ID:         "g1",
		Resolution: models.ResolutionServer,
		Timestamp:  time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveResolution(ctx, memo))

	got, err := s.GetResolution(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, memo.ID, got.ID)
	assert.Equal(t, memo.Resolution, got.Resolution)
	assert.True(t, memo.Timestamp.Equal(got.Timestamp))

	_, err = s.GetResolution(ctx, "g2")
	require.ErrorIs(t, err, storage.ErrResolutionNotFound, "memos are per document")
}

func TestRemoveResolution(t *testing.T) {
	s, _ := createTestStorage(t)
	ctx := context.Background()

	memo := &models.ConflictResolution{ID: "g1", Resolution: models.ResolutionLocal}
	require.NoError(t, s.SaveResolution(ctx, memo))
	require.NoError(t, s.RemoveResolution(ctx, "g1"))

	_, err := s.GetResolution(ctx, "g1")
	require.ErrorIs(t, err, storage.ErrResolutionNotFound)

	assert.NoError(t, s.RemoveResolution(ctx, "g1"), "removing an absent memo is not an error")
}
