package registry

import (
	"context"
	"encoding/json"
	"fmt"

	"etsy-mock-api/internal/model"

	"github.com/redis/go-redis/v9"
)

const (
	// tokenKeyPrefix keys the full record by access token.
	tokenKeyPrefix = "etsy-mock:token:"

	// refreshKeyPrefix is a secondary index from refresh token to access
	// token, replacing the in-memory linear scan. Refresh tokens are unique
	// per issued pair, so the lookup is equivalent to first-match.
	refreshKeyPrefix = "etsy-mock:refresh:"
)

// RedisTokenStore is a Redis-backed TokenStore. Useful when several mock
// instances must honor the same issued tokens during development. Records
// are stored without TTL; expiry stays informational either way.
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore creates a Redis token store and verifies connectivity.
func NewRedisTokenStore(ctx context.Context, client *redis.Client) (*RedisTokenStore, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	return &RedisTokenStore{client: client}, nil
}

// Save stores a token record plus the refresh-token index entry.
func (s *RedisTokenStore) Save(ctx context.Context, record *model.TokenRecord) error {
	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize token record: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, tokenKeyPrefix+record.AccessToken, jsonData, 0)
	pipe.Set(ctx, refreshKeyPrefix+record.RefreshToken, record.AccessToken, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

// GetByAccessToken resolves an access token by exact key lookup.
func (s *RedisTokenStore) GetByAccessToken(ctx context.Context, accessToken string) (*model.TokenRecord, error) {
	jsonData, err := s.client.Get(ctx, tokenKeyPrefix+accessToken).Bytes()
	if err == redis.Nil {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	var record model.TokenRecord
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("failed to parse token record: %w", err)
	}
	return &record, nil
}

// FindByRefreshToken resolves through the refresh-token index.
func (s *RedisTokenStore) FindByRefreshToken(ctx context.Context, refreshToken string) (*model.TokenRecord, error) {
	accessToken, err := s.client.Get(ctx, refreshKeyPrefix+refreshToken).Result()
	if err == redis.Nil {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve refresh token: %w", err)
	}
	return s.GetByAccessToken(ctx, accessToken)
}

var _ TokenStore = (*RedisTokenStore)(nil)
