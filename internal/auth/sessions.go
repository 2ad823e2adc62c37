package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "admin:session:" // admin:session:{token}

var ErrNoSession = errors.New("no active session")

// Sessions stores opaque admin session tokens in redis with a TTL.
type Sessions struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessions(client *redis.Client, ttl time.Duration) *Sessions {
	return &Sessions{client: client, ttl: ttl}
}

// Create mints a fresh token and stores it.
func (s *Sessions) Create(ctx context.Context) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)

	if err := s.client.Set(ctx, sessionKeyPrefix+token, "1", s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Validate checks the token and refreshes its TTL on hit.
func (s *Sessions) Validate(ctx context.Context, token string) error {
	if token == "" {
		return ErrNoSession
	}

	ok, err := s.client.Expire(ctx, sessionKeyPrefix+token, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if !ok {
		return ErrNoSession
	}
	return nil
}

// Destroy removes the token. Unknown tokens are not an error.
func (s *Sessions) Destroy(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}

// TTL returns the configured session lifetime.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}
