package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sync"

	"golang.org/x/exp/slog"
)

// JSON is a storage that keeps the whole interests document in a single
// JSON file, loaded once at startup and flushed on every write.
type JSON struct {
	log  *slog.Logger
	path string

	mu   sync.RWMutex
	data map[string][]string
}

// NewJSON loads the interests document from dir. An absent document
// means an empty store, an unreadable or corrupt one is logged and
// discarded.
func NewJSON(lg *slog.Logger, dir string) *JSON {
	j := &JSON{
		log:  lg,
		path: path.Join(dir, "interests.json"),
		data: map[string][]string{},
	}

	bts, err := os.ReadFile(j.path)
	if err != nil {
		if !os.IsNotExist(err) {
			lg.Warn("failed to read interests document, starting empty", slog.Any("err", err))
		}
		return j
	}

	if err = json.Unmarshal(bts, &j.data); err != nil {
		lg.Warn("corrupt interests document, starting empty", slog.Any("err", err))
		j.data = map[string][]string{}
	}

	return j
}

// Set replaces interests of the given user with the cleaned topics and
// flushes the document. A flush failure is logged, the in-memory state
// remains authoritative.
func (j *JSON) Set(ctx context.Context, userID string, topics []string) ([]string, error) {
	cleaned, err := CleanTopics(topics)
	if err != nil {
		return nil, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.data[userID] = cleaned

	if err = j.flush(); err != nil {
		j.log.WarnCtx(ctx, "failed to flush interests", slog.Any("err", err))
	}

	return cleaned, nil
}

// Get returns interests of the given user. An unknown user gets an
// empty list, no entry is created.
func (j *JSON) Get(_ context.Context, userID string) ([]string, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	topics := make([]string, len(j.data[userID]))
	copy(topics, j.data[userID])

	return topics, nil
}

// List returns all stored interests.
func (j *JSON) List(context.Context) (map[string][]string, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	result := make(map[string][]string, len(j.data))
	for id, topics := range j.data {
		cp := make([]string, len(topics))
		copy(cp, topics)
		result[id] = cp
	}

	return result, nil
}

// Close closes the storage.
func (j *JSON) Close() error { return nil }

// flush must be called under the write lock.
func (j *JSON) flush() error {
	bts, err := json.Marshal(j.data)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	tmp := j.path + ".tmp"
	if err = os.WriteFile(tmp, bts, 0600); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	if err = os.Rename(tmp, j.path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}

	return nil
}
