package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const challengeKeyPrefix = "walletboard:nonce:"

var ErrChallengeNotFound = errors.New("challenge not found")

// MemorySessionStore keeps challenges in process memory. Suitable for a single instance.
type MemorySessionStore struct {
	mu      sync.Mutex
	entries *cache.Cache
}

func NewMemorySessionStore(cleanupInterval time.Duration) SessionStoreInterface {
	return &MemorySessionStore{
		entries: cache.New(cache.NoExpiration, cleanupInterval),
	}
}

func (s *MemorySessionStore) Put(_ context.Context, sessionID, nonce string, ttl time.Duration) error {
	if sessionID == "" {
		return errors.New("session ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries.Set(sessionID, nonce, ttl)
	return nil
}

// Take returns and removes the challenge in one step so a nonce is never served twice.
func (s *MemorySessionStore) Take(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, found := s.entries.Get(sessionID)
	if !found {
		return "", ErrChallengeNotFound
	}
	s.entries.Delete(sessionID)

	nonce, ok := value.(string)
	if !ok || nonce == "" {
		return "", ErrChallengeNotFound
	}
	return nonce, nil
}

// RedisSessionStore shares challenges between instances.
type RedisSessionStore struct {
	client redis.UniversalClient
}

func NewRedisSessionStore(client redis.UniversalClient) SessionStoreInterface {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Put(ctx context.Context, sessionID, nonce string, ttl time.Duration) error {
	if sessionID == "" {
		return errors.New("session ID is required")
	}

	if err := s.client.Set(ctx, challengeKeyPrefix+sessionID, nonce, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store challenge: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Take(ctx context.Context, sessionID string) (string, error) {
	nonce, err := s.client.GetDel(ctx, challengeKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrChallengeNotFound
		}
		return "", fmt.Errorf("failed to take challenge: %w", err)
	}
	if nonce == "" {
		return "", ErrChallengeNotFound
	}
	return nonce, nil
}
