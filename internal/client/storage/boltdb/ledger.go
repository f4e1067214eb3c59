package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/courtside/statsync/internal/client/storage"
	"github.com/courtside/statsync/internal/models"
)

// ledgerRecord wraps a pending change with the sequence number that preserves
// insertion order across replacements: replacing a change keeps its position
// in the queue.
type ledgerRecord struct {
	Change *models.PendingChange `json:"change"`
	Seq    uint64                `json:"seq"`
}

// ledgerKey namespaces ledger entries by (collection, id)
func ledgerKey(collection, id string) []byte {
	return []byte(collection + "/" + id)
}

// SaveChange stores a pending change, replacing any existing entry for the same
// (collection, id) pair
func (s *Storage) SaveChange(ctx context.Context, change *models.PendingChange) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLedger)
		key := ledgerKey(change.Collection, change.ID)

		record := ledgerRecord{Change: change}

		// A replaced change keeps its original queue position.
		if existing := bucket.Get(key); existing != nil {
			var prior ledgerRecord
			if err := json.Unmarshal(existing, &prior); err == nil {
				record.Seq = prior.Seq
			}
		}
		if record.Seq == 0 {
			seq, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("failed to allocate sequence: %w", err)
			}
			record.Seq = seq
		}

		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal pending change: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save pending change: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("ledger transaction failed: %w", err)
	}

	return nil
}

// ListChanges returns all pending changes in insertion order. A record that fails to
// deserialize is dropped from the ledger and skipped; one bad entry never
// aborts the drain that follows.
func (s *Storage) ListChanges(ctx context.Context) ([]*models.PendingChange, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []ledgerRecord
	var corrupt [][]byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketLedger).ForEach(func(k, v []byte) error {
			var record ledgerRecord
			if err := json.Unmarshal(v, &record); err != nil || record.Change == nil {
				key := make([]byte, len(k))
				copy(key, k)
				corrupt = append(corrupt, key)
				return nil
			}
			records = append(records, record)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending changes: %w", err)
	}

	if len(corrupt) > 0 {
		s.logger.Warn("dropping corrupt ledger entries", "count", len(corrupt))
		err := s.db.Update(func(tx *bbolt.Tx) error {
			bucket := tx.Bucket(bucketLedger)
			for _, key := range corrupt {
				if err := bucket.Delete(key); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			s.logger.Warn("failed to drop corrupt ledger entries", "error", err)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Seq < records[j].Seq
	})

	changes := make([]*models.PendingChange, 0, len(records))
	for _, record := range records {
		changes = append(changes, record.Change)
	}

	return changes, nil
}

// RemoveChange deletes the pending change for the (collection, id) pair
func (s *Storage) RemoveChange(ctx context.Context, collection, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketLedger).Delete(ledgerKey(collection, id))
	})
	if err != nil {
		return fmt.Errorf("failed to remove pending change: %w", err)
	}

	return nil
}

// CountChanges returns the number of pending changes. Records that fail to
// deserialize are excluded, so the count matches what ListChanges would
// return.
func (s *Storage) CountChanges(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketLedger).ForEach(func(_, v []byte) error {
			var record ledgerRecord
			if err := json.Unmarshal(v, &record); err != nil || record.Change == nil {
				return nil
			}
			count++
			return nil
		})
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count pending changes: %w", err)
	}

	return count, nil
}

// ClearChanges removes all pending changes
func (s *Storage) ClearChanges(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketLedger); err != nil {
			return fmt.Errorf("failed to delete ledger bucket: %w", err)
		}
		if _, err := tx.CreateBucket(bucketLedger); err != nil {
			return fmt.Errorf("failed to recreate ledger bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}
