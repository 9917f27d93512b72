package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"syscall"
	"time"

	bolt "go.etcd.io/bbolt"

	"svw.info/hexcube/internal/domain"
)

var (
	bucketGame   = []byte("hexcube")
	keyGameState = []byte("game-state")
)

// Bolt persists the single active game state as JSON in a bbolt bucket
// under a fixed key. Save failures surface as ErrUnavailable or
// ErrQuotaExceeded; Clear is the one best-effort operation.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (creating if needed) the state database at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, path, err)
	}
	return &Bolt{db: db}, nil
}

// Close releases the database file.
func (s *Bolt) Close() error { return s.db.Close() }

func classify(err error) error {
	if errors.Is(err, syscall.ENOSPC) {
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (s *Bolt) Save(ctx context.Context, doc *domain.SavedGameDoc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketGame)
		if err != nil {
			return err
		}
		return b.Put(keyGameState, data)
	})
	if err != nil {
		return classify(err)
	}
	return nil
}

func (s *Bolt) Load(ctx context.Context) (*domain.SavedGameDoc, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketGame)
		if b == nil {
			return ErrNotFound
		}
		v := b.Get(keyGameState)
		if v == nil {
			return ErrNotFound
		}
		data = append(data, v...)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, classify(err)
	}
	var doc domain.SavedGameDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("storage: corrupt game-state document: %w", err)
	}
	if err := domain.ValidateSavedGame(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Clear drops the persisted state. Failures are deliberately ignored.
func (s *Bolt) Clear(ctx context.Context) {
	_ = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketGame)
		if b == nil {
			return nil
		}
		return b.Delete(keyGameState)
	})
}
