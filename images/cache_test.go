package images

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRedisCache_UnreachableIsMiss(t *testing.T) {
	c := NewRedisCache(RedisOptions{Addr: "127.0.0.1:1"}, nil)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c.Set(ctx, "bordeaux", DefaultImages())
	_, ok := c.Get(ctx, "bordeaux")
	assert.False(t, ok)
	assert.Error(t, c.Ping(ctx))
}

func TestNewRedisCache_DefaultTTL(t *testing.T) {
	c := NewRedisCache(RedisOptions{Addr: "127.0.0.1:1"}, nil)
	defer c.Close()
	assert.Equal(t, 24*time.Hour, c.ttl)
}
