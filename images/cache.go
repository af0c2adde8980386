package images

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "winepost:images:"

// RedisCache keeps Unsplash results for a TTL so repeated searches don't spend quota.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

// RedisOptions mirrors the connection settings in config.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func NewRedisCache(opts RedisOptions, log *zap.Logger) *RedisCache {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	return &RedisCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}),
		ttl: opts.TTL,
		log: log,
	}
}

func cacheKey(query string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(query))
}

// Get treats any redis failure as a miss.
func (c *RedisCache) Get(ctx context.Context, query string) ([]Image, bool) {
	b, err := c.rdb.Get(ctx, cacheKey(query)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("image cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var imgs []Image
	if err := json.Unmarshal(b, &imgs); err != nil {
		c.log.Warn("image cache entry corrupt", zap.String("query", query), zap.Error(err))
		return nil, false
	}
	return imgs, true
}

func (c *RedisCache) Set(ctx context.Context, query string, imgs []Image) {
	b, err := json.Marshal(imgs)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(query), b, c.ttl).Err(); err != nil {
		c.log.Warn("image cache write failed", zap.Error(err))
	}
}

// Ping checks connectivity at startup.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.rdb.Close()
}
