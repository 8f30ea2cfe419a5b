// internal/store/redis.go
//
// Redis-backed Store. Snapshots are stored as JSON under a key prefix and
// expire after the configured TTL.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
)

// RedisStore keeps snapshots as JSON strings, one key per game.
type RedisStore struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type RedisOption func(*RedisStore)

// WithTTL sets the expiration for games. Zero means no expiry.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) { s.ttl = ttl }
}

// WithPrefix sets the key prefix for games.
func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) { s.prefix = prefix }
}

// NewRedisStore connects to a Redis server.
func NewRedisStore(addr, password string, db int, opts ...RedisOption) *RedisStore {
	return NewRedisStoreFromClient(backend.NewClient(&backend.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}), opts...)
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *backend.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, prefix: "wordle:game:"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(id string) string { return s.prefix + id }

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Save(ctx context.Context, snap game.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}
	if err := s.client.Set(ctx, s.key(snap.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save to redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (game.Snapshot, error) {
	val, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return game.Snapshot{}, ErrNotFound
		}
		return game.Snapshot{}, fmt.Errorf("get from redis: %w", err)
	}
	var snap game.Snapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		return game.Snapshot{}, fmt.Errorf("unmarshal game: %w", err)
	}
	return snap, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

// Close releases the client.
func (s *RedisStore) Close() error { return s.client.Close() }
