package common

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "revoked_token:"

// RevokedTokenStore records logged-out token ids until they expire
type RevokedTokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RedisTokenStore keeps revoked token ids in Redis so every API instance sees them
type RedisTokenStore struct {
	client *redis.Client
}

var _ RevokedTokenStore = (*RedisTokenStore)(nil)

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, revokedTokenPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	result, err := s.client.Get(ctx, revokedTokenPrefix+tokenID).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return result == "1", nil
}

// MemoryTokenStore keeps revoked token ids in the process cache
type MemoryTokenStore struct {
	cache CacheInterface
}

var _ RevokedTokenStore = (*MemoryTokenStore)(nil)

func NewMemoryTokenStore(cache CacheInterface) *MemoryTokenStore {
	return &MemoryTokenStore{cache: cache}
}

func (s *MemoryTokenStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s.cache.Set(revokedTokenPrefix+tokenID, true, ttl)
	return nil
}

func (s *MemoryTokenStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, found := s.cache.Get(revokedTokenPrefix + tokenID)
	return found, nil
}
