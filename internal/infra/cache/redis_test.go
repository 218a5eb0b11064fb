package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-admin/pkg/redis"
	"hospital-admin/pkg/resource"
)

func loadRedisProperties(t *testing.T, mr *miniredis.Miniredis, extra map[string]any) {
	t.Helper()
	values := map[string]any{
		"app.redis.host": mr.Host(),
		"app.redis.port": mr.Port(),
	}
	for key, value := range extra {
		values[key] = value
	}
	resource.Load(values)
	t.Cleanup(func() { resource.Load(map[string]any{}) })
}

func TestNewRedisClient_ReadsProperties(t *testing.T) {
	mr := miniredis.RunT(t)
	loadRedisProperties(t, mr, map[string]any{
		"app.redis.default-ttl":    "2m",
		"app.redis.ttl.categories": "30m",
	})

	client, err := NewRedisClient()
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, redis.NewCache(client, redis.NewCacheOptions().WithCacheName("categories")).Set(ctx, "list", 1))
	require.NoError(t, redis.NewCache(client, redis.NewCacheOptions().WithCacheName("units")).Set(ctx, "list", 1))

	assert.Equal(t, 30*time.Minute, mr.TTL("categories::list"))
	assert.Equal(t, 2*time.Minute, mr.TTL("units::list"))
}

func TestNewRedisClient_InvalidTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	loadRedisProperties(t, mr, map[string]any{"app.redis.ttl.units": "soon"})

	_, err := NewRedisClient()
	assert.Error(t, err)
}

func TestNewRedisClient_UnknownTTLKey(t *testing.T) {
	mr := miniredis.RunT(t)
	loadRedisProperties(t, mr, map[string]any{"app.redis.ttl.unitz": "30m"})

	_, err := NewRedisClient()
	assert.ErrorContains(t, err, "app.redis.ttl.unitz")
}
