package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// ErrCacheCorrupt is returned by Cache.Get when the stored value no longer decodes into dest.
var ErrCacheCorrupt = errors.New("cache entry cannot be decoded")

// CacheOptions represents options for cache operations
type CacheOptions struct {
	// TTL is used when the cache has no name or the client config has no TTL for it
	TTL time.Duration
	// RefreshTTL restarts the TTL on every hit (sliding expiration)
	RefreshTTL   bool
	Serializer   func(interface{}) ([]byte, error)
	Deserializer func([]byte, interface{}) error
	// CacheName prefixes every key as CacheName::key and selects the TTL from the client config
	CacheName string
}

// NewCacheOptions creates a new cache options with default values
func NewCacheOptions() *CacheOptions {
	return &CacheOptions{
		TTL:          5 * time.Minute,
		Serializer:   json.Marshal,
		Deserializer: json.Unmarshal,
	}
}

// WithTTL sets the TTL for cache operations
func (co *CacheOptions) WithTTL(ttl time.Duration) *CacheOptions {
	co.TTL = ttl
	return co
}

// WithRefreshTTL enables TTL refresh on access
func (co *CacheOptions) WithRefreshTTL(refresh bool) *CacheOptions {
	co.RefreshTTL = refresh
	return co
}

// WithCacheName sets the cache name for key prefixing and TTL lookup
func (co *CacheOptions) WithCacheName(cacheName string) *CacheOptions {
	co.CacheName = cacheName
	return co
}

// Cache provides namespaced JSON caching on top of Client
type Cache struct {
	client *Client
	opts   *CacheOptions
}

// NewCache creates a new cache instance
func NewCache(client *Client, opts *CacheOptions) *Cache {
	if opts == nil {
		opts = NewCacheOptions()
	}
	return &Cache{
		client: client,
		opts:   opts,
	}
}

// getTTL returns the TTL for the cache, checking client configuration first
func (c *Cache) getTTL() time.Duration {
	if c.opts.CacheName != "" && c.client.config != nil {
		if ttl := c.client.config.TTLFor(c.opts.CacheName); ttl > 0 {
			return ttl
		}
	}
	return c.opts.TTL
}

// buildCacheKey constructs the full cache key using CacheName::cacheKey format
func (c *Cache) buildCacheKey(key string) string {
	if c.opts.CacheName != "" {
		return c.opts.CacheName + "::" + key
	}
	return key
}

// Get loads key into dest. It returns ErrCacheMiss when nothing is stored and
// ErrCacheCorrupt when the stored bytes do not decode.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	fullKey := c.buildCacheKey(key)
	data, err := c.client.GetBytes(ctx, fullKey)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return ErrCacheMiss
	}

	if err := c.opts.Deserializer(data, dest); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCacheCorrupt, fullKey, err)
	}

	if c.opts.RefreshTTL {
		_ = c.client.Expire(ctx, fullKey, c.getTTL())
	}
	return nil
}

// Set stores a value in cache with serialization
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := c.opts.Serializer(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}

	return c.client.Set(ctx, c.buildCacheKey(key), data, c.getTTL())
}

// Delete removes a value from cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildCacheKey(key))
}

// Clear removes every key of this cache matching pattern (CacheName is prepended).
func (c *Cache) Clear(ctx context.Context, pattern string) (int, error) {
	return DeleteKeysByPattern(ctx, c.client, c.buildCacheKey(pattern), 100)
}
