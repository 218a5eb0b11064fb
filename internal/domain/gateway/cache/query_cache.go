package cache

import (
	"context"

	"hospital-admin/internal/domain/cachekey"
	"hospital-admin/internal/domain/model"
	"hospital-admin/pkg/redis"
)

// ErrMiss is returned by QueryCache.Get when the entry is not cached.
var ErrMiss = redis.ErrCacheMiss

// ErrCorrupt is returned by QueryCache.Get when the stored entry no longer decodes, for
// example after the record shape changed between releases.
var ErrCorrupt = redis.ErrCacheCorrupt

// QueryCache stores backend reads under <key>::<entry> so a whole key can be invalidated at once.
type QueryCache interface {
	Get(ctx context.Context, key cachekey.Key, entry string, dest any) error
	Set(ctx context.Context, key cachekey.Key, entry string, value any) error
	// Evict drops a single entry of key.
	Evict(ctx context.Context, key cachekey.Key, entry string) error
	// Invalidate drops every entry of keys and returns how many were removed.
	Invalidate(ctx context.Context, keys ...cachekey.Key) (int, error)
	Health(ctx context.Context) model.ComponentHealthStatus
}
