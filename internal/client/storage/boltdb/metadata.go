package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/courtside/statsync/internal/client/storage"
	"github.com/courtside/statsync/internal/models"
)

var (
	keyLastSync      = []byte("last_sync")
	resolutionPrefix = "resolution/"
)

// SaveLastSyncTime records when the last drain pass finished
func (s *Storage) SaveLastSyncTime(ctx context.Context, t time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := t.MarshalText()
	if err != nil {
		return fmt.Errorf("failed to marshal sync time: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(keyLastSync, data)
	})
	if err != nil {
		return fmt.Errorf("failed to save last sync time: %w", err)
	}

	return nil
}

// LastSyncTime returns when the last drain pass finished, or the zero time if
// no pass has ever run
func (s *Storage) LastSyncTime(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var t time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keyLastSync)
		if data == nil {
			return nil
		}
		if err := t.UnmarshalText(data); err != nil {
			return fmt.Errorf("failed to unmarshal sync time: %w", err)
		}
		return nil
	})
	if err != nil {
		return time.Time{}, err
	}

	return t, nil
}

// SaveResolution persists a conflict resolution memo
func (s *Storage) SaveResolution(ctx context.Context, res *models.ConflictResolution) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal resolution: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put([]byte(resolutionPrefix+res.ID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save resolution: %w", err)
	}

	return nil
}

// GetResolution retrieves the conflict resolution memo for a document
func (s *Storage) GetResolution(ctx context.Context, id string) (*models.ConflictResolution, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var res *models.ConflictResolution

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get([]byte(resolutionPrefix + id))
		if data == nil {
			return storage.ErrResolutionNotFound
		}
		res = &models.ConflictResolution{}
		if err := json.Unmarshal(data, res); err != nil {
			return fmt.Errorf("failed to unmarshal resolution: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// RemoveResolution deletes the memo for a document
func (s *Storage) RemoveResolution(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Delete([]byte(resolutionPrefix + id))
	})
	if err != nil {
		return fmt.Errorf("failed to remove resolution: %w", err)
	}

	return nil
}
