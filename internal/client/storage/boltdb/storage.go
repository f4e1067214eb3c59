// Package boltdb implements the client storage interfaces on top of a single
// BoltDB file. Bolt fsyncs on every committed update, which gives the ledger
// the durability the sync engine depends on.
package boltdb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketGameCache  = []byte("game_cache")
	bucketOwnerCache = []byte("owner_cache")
	bucketLedger     = []byte("pending_changes")
	bucketMeta       = []byte("sync_meta")
)

// Storage represents BoltDB storage implementation for the client. It backs
// the game cache, the pending-change ledger and the sync metadata.
type Storage struct {
	db     *bbolt.DB
	clock  clockwork.Clock
	logger *slog.Logger
}

// New creates a new BoltDB storage instance.
// dbPath is the path to the BoltDB database file.
func New(ctx context.Context, dbPath string, clock clockwork.Clock, logger *slog.Logger) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db, clock: clock, logger: logger}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets creates the required buckets if they don't exist
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketGameCache, bucketOwnerCache, bucketLedger, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}
