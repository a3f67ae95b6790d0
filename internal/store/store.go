package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a path has never been written
var ErrNotFound = errors.New("path not found")

// Event is one change notification delivered to a subscriber
type Event struct {
	// Path is the path that changed
	Path string

	// Value is the value as written, nil for a delete
	Value []byte
}

// CancelFunc tears down a subscription
type CancelFunc func()

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/KirkDiggler/parlor/internal/store Store

// Store is a path-addressed key-value store with change notifications.
// Writes to different paths are not ordered relative to each other; writes
// to the same path are last-write-wins by arrival order. Notifications are
// delivered asynchronously and may lag the write they describe.
type Store interface {
	// Get reads the value at a path, ErrNotFound if never written
	Get(ctx context.Context, path string) ([]byte, error)

	// Set writes the value at a path and notifies subscribers
	Set(ctx context.Context, path string, value []byte) error

	// Delete removes a path and notifies subscribers with a nil value
	Delete(ctx context.Context, path string) error

	// List reads every path under a prefix, keyed by full path
	List(ctx context.Context, prefix string) (map[string][]byte, error)

	// Subscribe delivers events for every path matching the pattern.
	// A pattern is an exact path, or a prefix ending in '*'.
	Subscribe(ctx context.Context, pattern string) (<-chan Event, CancelFunc, error)
}

// MatchPattern reports whether path matches the subscription pattern
func MatchPattern(pattern, path string) bool {
	if n := len(pattern); n > 0 && pattern[n-1] == '*' {
		prefix := pattern[:n-1]
		return len(path) >= len(prefix) && path[:len(prefix)] == prefix
	}
	return pattern == path
}
