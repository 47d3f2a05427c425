package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"click-logs/internal/core/domain"
	"click-logs/internal/core/port"
)

const tokenKeyPrefix = "auth:token:"

// TokenCache implements port.TokenCache on Redis. Password hashes are
// never written to the cache.
type TokenCache struct {
	rdb *redis.Client
}

var (
	_ port.TokenCache = (*TokenCache)(nil)
	_ port.TokenCache = noopTokenCache{}
)

// NewTokenCache returns a Redis-backed cache, or a no-op cache if rdb is
// nil.
func NewTokenCache(rdb *redis.Client) port.TokenCache {
	if rdb == nil {
		return noopTokenCache{}
	}
	return &TokenCache{rdb: rdb}
}

type cachedUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Get returns the cached user for digest, or nil, nil on a miss.
func (c *TokenCache) Get(ctx context.Context, digest string) (*domain.User, error) {
	data, err := c.rdb.Get(ctx, tokenKeyPrefix+digest).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cu cachedUser
	if err = json.Unmarshal(data, &cu); err != nil {
		return nil, err
	}
	return &domain.User{ID: cu.ID, Username: cu.Username, CreatedAt: cu.CreatedAt}, nil
}

// Set caches user under digest for ttl. Non-positive ttls are ignored.
func (c *TokenCache) Set(ctx context.Context, digest string, user *domain.User, ttl time.Duration) error {
	if ttl <= 0 || user == nil {
		return nil
	}
	data, err := json.Marshal(cachedUser{ID: user.ID, Username: user.Username, CreatedAt: user.CreatedAt})
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, tokenKeyPrefix+digest, data, ttl).Err()
}

type noopTokenCache struct{}

func (noopTokenCache) Get(context.Context, string) (*domain.User, error) { return nil, nil }

func (noopTokenCache) Set(context.Context, string, *domain.User, time.Duration) error { return nil }
