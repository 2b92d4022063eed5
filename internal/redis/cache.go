package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"parley-chat/internal/domain/user"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// Cache key patterns:
// - token:{token_hash} - resolved token, TTL'd; Postgres stays the source of truth
// - user:{user_id}     - user profile cache

// CacheConfig contains configuration for caching
type CacheConfig struct {
	TokenTTL time.Duration // TTL for resolved-token cache entries
	UserTTL  time.Duration // TTL for user cache entries
}

// DefaultCacheConfig returns sensible defaults
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TokenTTL: 15 * time.Minute,
		UserTTL:  5 * time.Minute,
	}
}

// CacheStore handles caching in Redis
type CacheStore struct {
	client *goredis.Client
	config CacheConfig
}

// NewCacheStore creates a new cache store
func NewCacheStore(client *goredis.Client, config CacheConfig) *CacheStore {
	return &CacheStore{
		client: client,
		config: config,
	}
}

// --- Token Cache ---

// TokenCache represents a cached token resolution
type TokenCache struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

// GetToken retrieves a resolved token from cache. A nil result is a miss.
func (c *CacheStore) GetToken(ctx context.Context, tokenHash string) (*TokenCache, error) {
	key := fmt.Sprintf("token:%s", tokenHash)
	data, err := c.client.Get(ctx, key).Result()
	if err == goredis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, err
	}

	var cached TokenCache
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

// SetToken stores a resolved token in cache
func (c *CacheStore) SetToken(ctx context.Context, tokenHash string, u *user.User) error {
	key := fmt.Sprintf("token:%s", tokenHash)
	data, err := json.Marshal(TokenCache{UserID: u.ID, Username: u.Username})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.config.TokenTTL).Err()
}

// InvalidateToken removes a token from cache (call on logout)
func (c *CacheStore) InvalidateToken(ctx context.Context, tokenHash string) error {
	key := fmt.Sprintf("token:%s", tokenHash)
	return c.client.Del(ctx, key).Err()
}

// --- User Cache ---

// UserCache represents cached user data (subset for performance)
type UserCache struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// GetUser retrieves a user from cache. A nil result is a miss.
func (c *CacheStore) GetUser(ctx context.Context, userID uuid.UUID) (*UserCache, error) {
	key := fmt.Sprintf("user:%s", userID.String())
	data, err := c.client.Get(ctx, key).Result()
	if err == goredis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, err
	}

	var u UserCache
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// SetUser stores a user in cache
func (c *CacheStore) SetUser(ctx context.Context, u *user.User) error {
	key := fmt.Sprintf("user:%s", u.ID.String())
	data, err := json.Marshal(UserCache{ID: u.ID, Username: u.Username})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.config.UserTTL).Err()
}

// Ping checks if Redis is available
func (c *CacheStore) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
