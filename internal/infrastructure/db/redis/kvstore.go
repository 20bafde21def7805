package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// KVStore is the JSON-blob persistence facade backed by Redis. One fixed key
// per entity collection; values are whole collections marshalled as JSON.
type KVStore struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewKVStore wraps the given Redis client.
func NewKVStore(client *redis.Client, log zerolog.Logger) *KVStore {
	return &KVStore{client: client, log: log}
}

// Get loads and unmarshals the blob at key into dest. A missing key leaves
// dest at its caller-supplied default. A blob that fails to unmarshal is
// treated the same way: the corruption is logged and swallowed, and the
// caller keeps its default. Only transport failures are returned.
func (s *KVStore) Get(ctx context.Context, key string, dest any) error {
	raw, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("kv get %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("stored blob does not unmarshal; using default")
		return nil
	}
	return nil
}

// Set marshals value and stores it at key with no expiry.
func (s *KVStore) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv marshal %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}
