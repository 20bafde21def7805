package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionKey is a namespace of its own, deliberately separate from the
// accounting_* collection keys: session tokens never travel with app data.
const sessionKey = "accounting_session"

const defaultSessionTTL = 24 * time.Hour

// SessionStore keeps the opaque login token in Redis with a TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore. A non-positive ttl falls back to
// the 24h default.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Put stores the token, replacing any previous one.
func (s *SessionStore) Put(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, sessionKey, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

// Current returns the stored token, or "" when no session exists.
func (s *SessionStore) Current(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, sessionKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session get: %w", err)
	}
	return token, nil
}

// Clear removes the token. Clearing an absent token is not an error.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}
