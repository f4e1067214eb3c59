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

// cachedGame is the persisted cache record: the snapshot plus when it was
// written, which drives expiry.
type cachedGame struct {
	LastUpdated time.Time    `json:"last_updated"`
	Game        *models.Game `json:"game"`
}

// cachedOwnerGames is the persisted record for an owner's game list.
type cachedOwnerGames struct {
	LastUpdated time.Time      `json:"last_updated"`
	Games       []*models.Game `json:"games"`
}

// Put stores a game snapshot stamped with the current time
func (s *Storage) Put(ctx context.Context, game *models.Game) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	record := cachedGame{
		Game:        game,
		LastUpdated: s.clock.Now(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal cached game: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketGameCache)
		if err := bucket.Put([]byte(game.ID), data); err != nil {
			return fmt.Errorf("failed to save cached game: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache transaction failed: %w", err)
	}

	return nil
}

// Get retrieves a cached game by ID. An entry older than the expiry window is
// purged and reported as absent.
func (s *Storage) Get(ctx context.Context, id string) (*models.Game, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var record cachedGame

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketGameCache).Get([]byte(id))
		if data == nil {
			return storage.ErrGameNotFound
		}
		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to unmarshal cached game: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.expired(record.LastUpdated) {
		if err := s.Remove(ctx, id); err != nil {
			s.logger.Warn("failed to purge expired cache entry", "game_id", id, "error", err)
		}
		return nil, storage.ErrGameNotFound
	}

	return record.Game, nil
}

// Remove evicts a cached game
func (s *Storage) Remove(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketGameCache).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("failed to remove cached game: %w", err)
	}

	return nil
}

// PutOwnerGames stores an owner's game list as a single cache entry
func (s *Storage) PutOwnerGames(ctx context.Context, ownerID string, games []*models.Game) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	record := cachedOwnerGames{
		Games:       games,
		LastUpdated: s.clock.Now(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal owner games: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOwnerCache).Put([]byte(ownerID), data)
	})
	if err != nil {
		return fmt.Errorf("owner cache transaction failed: %w", err)
	}

	return nil
}

// GetOwnerGames retrieves an owner's cached game list with the same expiry
// semantics as Get
func (s *Storage) GetOwnerGames(ctx context.Context, ownerID string) ([]*models.Game, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var record cachedOwnerGames

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketOwnerCache).Get([]byte(ownerID))
		if data == nil {
			return storage.ErrGameNotFound
		}
		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to unmarshal owner games: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.expired(record.LastUpdated) {
		err := s.db.Update(func(tx *bbolt.Tx) error {
			return tx.Bucket(bucketOwnerCache).Delete([]byte(ownerID))
		})
		if err != nil {
			s.logger.Warn("failed to purge expired owner cache", "owner_id", ownerID, "error", err)
		}
		return nil, storage.ErrGameNotFound
	}

	return record.Games, nil
}

// Clear removes all cached games and owner lists
func (s *Storage) Clear(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketGameCache, bucketOwnerCache} {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("failed to delete %s bucket: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("failed to recreate %s bucket: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}

// expired reports whether a cache timestamp is past the expiry window
func (s *Storage) expired(lastUpdated time.Time) bool {
	return s.clock.Now().Sub(lastUpdated) > storage.CacheExpiry
}
