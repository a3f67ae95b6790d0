package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for all stored paths
	pathKeyPrefix = "parlor:path:"

	// Channel prefix for change notifications
	notifyChannelPrefix = "parlor:notify:"
)

// Config holds configuration for the Redis store
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisStore implements the Store interface using Redis keys for values
// and pub/sub channels for change notifications
type redisStore struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed store
func NewRedis(cfg *Config) (*redisStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{
		client: cfg.RedisClient,
	}, nil
}

// Get reads the value at a path
func (s *redisStore) Get(ctx context.Context, path string) ([]byte, error) {
	value, err := s.client.Get(ctx, pathKeyPrefix+path).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", path, err)
	}
	return value, nil
}

// Set writes the value at a path and publishes a change notification
func (s *redisStore) Set(ctx context.Context, path string, value []byte) error {
	pipe := s.client.Pipeline()
	pipe.Set(ctx, pathKeyPrefix+path, value, 0)
	pipe.Publish(ctx, notifyChannelPrefix+path, value)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set %s: %w", path, err)
	}
	return nil
}

// Delete removes a path and publishes an empty notification. Stored values
// are always non-empty JSON, so an empty payload is unambiguous.
func (s *redisStore) Delete(ctx context.Context, path string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, pathKeyPrefix+path)
	pipe.Publish(ctx, notifyChannelPrefix+path, "")
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

// List reads every path under a prefix
func (s *redisStore) List(ctx context.Context, prefix string) (map[string][]byte, error) {
	keys, err := s.client.Keys(ctx, pathKeyPrefix+prefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", prefix, err)
	}

	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	pipe := s.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(keys))
	for _, key := range keys {
		commands[key] = pipe.Get(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to read listed paths: %w", err)
	}

	for key, cmd := range commands {
		value, err := cmd.Bytes()
		if err != nil {
			if err == redis.Nil {
				// Deleted between KEYS and GET
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", key, err)
		}
		out[key[len(pathKeyPrefix):]] = value
	}

	return out, nil
}

// Subscribe delivers change events for every path matching the pattern
func (s *redisStore) Subscribe(ctx context.Context, pattern string) (<-chan Event, CancelFunc, error) {
	pubsub := s.client.PSubscribe(ctx, notifyChannelPrefix+pattern)

	// Force the subscription onto the wire before returning
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to %s: %w", pattern, err)
	}

	events := make(chan Event, 16)
	go func() {
		defer close(events)
		for msg := range pubsub.Channel() {
			event := Event{
				Path: msg.Channel[len(notifyChannelPrefix):],
			}
			if msg.Payload != "" {
				event.Value = []byte(msg.Payload)
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() {
		_ = pubsub.Close()
	}
	return events, cancel, nil
}
