package store

import (
	"context"
	"strings"
	"sync"
)

// Memory is an in-process Store used by tests and single-node setups.
// It delivers notifications synchronously on Set/Delete, which gives tests
// deterministic interleavings the replicated store cannot promise.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
	subs   map[int]*memorySub
	nextID int
}

type memorySub struct {
	pattern string
	events  chan Event
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		values: make(map[string][]byte),
		subs:   make(map[int]*memorySub),
	}
}

// Get reads the value at a path
func (m *Memory) Get(ctx context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[path]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set writes the value at a path and notifies matching subscribers
func (m *Memory) Set(ctx context.Context, path string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[path] = stored
	m.notifyLocked(Event{Path: path, Value: stored})
	return nil
}

// Delete removes a path and notifies matching subscribers with a nil value
func (m *Memory) Delete(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, path)
	m.notifyLocked(Event{Path: path})
	return nil
}

// List reads every path under a prefix
func (m *Memory) List(ctx context.Context, prefix string) (map[string][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string][]byte)
	for path, value := range m.values {
		if strings.HasPrefix(path, prefix) {
			copied := make([]byte, len(value))
			copy(copied, value)
			out[path] = copied
		}
	}
	return out, nil
}

// Subscribe delivers change events for every path matching the pattern
func (m *Memory) Subscribe(ctx context.Context, pattern string) (<-chan Event, CancelFunc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	sub := &memorySub{
		pattern: pattern,
		events:  make(chan Event, 64),
	}
	m.subs[id] = sub

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if existing, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(existing.events)
		}
	}
	return sub.events, cancel, nil
}

// notifyLocked fans an event out to matching subscribers. Slow subscribers
// drop events rather than block writers, matching the replicated store's
// at-most-once notification behavior.
func (m *Memory) notifyLocked(event Event) {
	for _, sub := range m.subs {
		if !MatchPattern(sub.pattern, event.Path) {
			continue
		}
		select {
		case sub.events <- event:
		default:
		}
	}
}
