// Package store contains interest storage backends.
package store

import (
	"context"
	"errors"
	"strings"
)

// ErrNoTopics is returned when the topic list is empty after cleaning.
var ErrNoTopics = errors.New("no topics left after cleaning")

//go:generate moq -out mock_store.go . Interface

// Interface defines methods for interests store.
type Interface interface {
	Set(ctx context.Context, userID string, topics []string) ([]string, error)
	Get(ctx context.Context, userID string) ([]string, error)
	List(ctx context.Context) (map[string][]string, error)
	Close() error
}

// CleanTopics trims and lowercases topics, dropping entries that are
// empty after trimming. Duplicates and order are preserved.
func CleanTopics(topics []string) ([]string, error) {
	result := make([]string, 0, len(topics))
	for _, topic := range topics {
		topic = strings.ToLower(strings.TrimSpace(topic))
		if topic == "" {
			continue
		}
		result = append(result, topic)
	}

	if len(result) == 0 {
		return nil, ErrNoTopics
	}

	return result, nil
}
