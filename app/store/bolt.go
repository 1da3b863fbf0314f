package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	bolt "go.etcd.io/bbolt"
)

const interestsBktName = "interests"

// Bolt is a storage that uses BoltDB as a backend. Unlike JSON, a
// persistence failure here fails the write.
type Bolt struct {
	db *bolt.DB
}

// NewBolt creates new Bolt storage.
func NewBolt(dir string) (*Bolt, error) {
	db, err := bolt.Open(path.Join(dir, "interests.db"), 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to make boltdb for %s: %w", dir, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{interestsBktName} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create top-level bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("make buckets: %w", err)
	}

	return &Bolt{db: db}, nil
}

// Set replaces interests of the given user with the cleaned topics.
func (b *Bolt) Set(_ context.Context, userID string, topics []string) ([]string, error) {
	cleaned, err := CleanTopics(topics)
	if err != nil {
		return nil, err
	}

	err = b.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket([]byte(interestsBktName))

		bts, err := json.Marshal(cleaned)
		if err != nil {
			return fmt.Errorf("marshal topics: %w", err)
		}

		if err := bkt.Put([]byte(userID), bts); err != nil {
			return fmt.Errorf("put interests to storage: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update storage: %w", err)
	}

	return cleaned, nil
}

// Get returns interests of the given user, empty if unknown.
func (b *Bolt) Get(_ context.Context, userID string) (topics []string, err error) {
	err = b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket([]byte(interestsBktName))

		bts := bkt.Get([]byte(userID))
		if bts == nil {
			topics = []string{}
			return nil
		}

		if err := json.Unmarshal(bts, &topics); err != nil {
			return fmt.Errorf("unmarshal topics: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("view storage: %w", err)
	}

	return topics, nil
}

// List returns all stored interests.
func (b *Bolt) List(context.Context) (map[string][]string, error) {
	result := map[string][]string{}
	err := b.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket([]byte(interestsBktName))
		err := bkt.ForEach(func(k, v []byte) error {
			var topics []string
			if err := json.Unmarshal(v, &topics); err != nil {
				return fmt.Errorf("unmarshal topics of %s: %w", k, err)
			}
			result[string(k)] = topics
			return nil
		})
		if err != nil {
			return fmt.Errorf("foreach: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("view storage: %w", err)
	}
	return result, nil
}

// Close closes the storage.
func (b *Bolt) Close() error { return b.db.Close() }
