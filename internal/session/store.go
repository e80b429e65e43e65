package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RevocationStore remembers revoked tokens until they would have expired
// anyway.
type RevocationStore interface {
	// Revoke marks token as revoked until expiresAt. Tokens already past
	// expiresAt are ignored.
	Revoke(ctx context.Context, token string, expiresAt time.Time) error

	// IsRevoked reports whether token has been revoked.
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// memoryStore is a process-local RevocationStore.
type memoryStore struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemoryStore creates an in-memory revocation store.
func NewMemoryStore() RevocationStore {
	return newMemoryStore(time.Now)
}

func newMemoryStore(now func() time.Time) *memoryStore {
	return &memoryStore{
		revoked: make(map[string]time.Time),
		now:     now,
	}
}

func (s *memoryStore) Revoke(_ context.Context, token string, expiresAt time.Time) error {
	now := s.now()
	if !expiresAt.After(now) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.revoked[Fingerprint(token)] = expiresAt

	// drop entries whose tokens have expired on their own
	for key, exp := range s.revoked {
		if !exp.After(now) {
			delete(s.revoked, key)
		}
	}
	return nil
}

func (s *memoryStore) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, ok := s.revoked[Fingerprint(token)]
	if !ok {
		return false, nil
	}
	return exp.After(s.now()), nil
}

const redisKeyPrefix = "session:revoked:"

// redisStore is a RevocationStore shared across instances through Redis.
// Keys expire together with the token they revoke.
type redisStore struct {
	client *redis.Client
	logger zerolog.Logger
	now    func() time.Time
}

// NewRedisStore creates a Redis-backed revocation store.
func NewRedisStore(client *redis.Client, logger zerolog.Logger) RevocationStore {
	return &redisStore{
		client: client,
		logger: logger.With().Str("store", "revocation").Logger(),
		now:    time.Now,
	}
}

func (s *redisStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	key := redisKeyPrefix + Fingerprint(token)
	if err := s.client.Set(ctx, key, 1, ttl).Err(); err != nil {
		s.logger.Error().Err(err).Msg("failed to store revoked token")
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *redisStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, redisKeyPrefix+Fingerprint(token)).Result()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to check revoked token")
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}
