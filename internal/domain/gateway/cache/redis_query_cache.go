package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"hospital-admin/internal/domain/cachekey"
	"hospital-admin/internal/domain/model"
	"hospital-admin/pkg/redis"
)

type redisQueryCache struct {
	client        *redis.Client
	healthTimeout time.Duration

	sliding map[cachekey.Key]bool

	mu     sync.Mutex
	caches map[cachekey.Key]*redis.Cache
}

// NewRedisQueryCache creates a QueryCache with one namespaced redis.Cache per key.
// Entry TTLs come from the client config, looked up by key name. Entries of the sliding
// keys get their TTL restarted on every hit.
func NewRedisQueryCache(client *redis.Client, healthTimeout time.Duration, sliding ...cachekey.Key) QueryCache {
	c := &redisQueryCache{
		client:        client,
		healthTimeout: healthTimeout,
		sliding:       make(map[cachekey.Key]bool, len(sliding)),
		caches:        make(map[cachekey.Key]*redis.Cache),
	}
	for _, key := range sliding {
		c.sliding[key] = true
	}
	return c
}

func (c *redisQueryCache) cacheFor(key cachekey.Key) *redis.Cache {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cache, ok := c.caches[key]; ok {
		return cache
	}
	opts := redis.NewCacheOptions().
		WithCacheName(string(key)).
		WithRefreshTTL(c.sliding[key])
	cache := redis.NewCache(c.client, opts)
	c.caches[key] = cache
	return cache
}

func (c *redisQueryCache) Get(ctx context.Context, key cachekey.Key, entry string, dest any) error {
	return c.cacheFor(key).Get(ctx, entry, dest)
}

func (c *redisQueryCache) Set(ctx context.Context, key cachekey.Key, entry string, value any) error {
	return c.cacheFor(key).Set(ctx, entry, value)
}

func (c *redisQueryCache) Evict(ctx context.Context, key cachekey.Key, entry string) error {
	return c.cacheFor(key).Delete(ctx, entry)
}

func (c *redisQueryCache) Invalidate(ctx context.Context, keys ...cachekey.Key) (int, error) {
	var (
		total int
		errs  []error
	)
	for _, key := range keys {
		removed, err := c.cacheFor(key).Clear(ctx, "*")
		total += removed
		if err != nil {
			errs = append(errs, fmt.Errorf("invalidate %s: %w", key, err))
		}
	}
	return total, errors.Join(errs...)
}

func (c *redisQueryCache) Health(ctx context.Context) model.ComponentHealthStatus {
	report := redis.HealthCheck(ctx, c.client, c.healthTimeout)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(report.Status),
		Details: report.Details,
	}
}
