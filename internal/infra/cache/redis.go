package cache

import (
	"fmt"
	"time"

	"hospital-admin/internal/domain/cachekey"
	"hospital-admin/pkg/redis"
	"hospital-admin/pkg/resource"
)

// NewRedisClient connects to the Redis configured under app.redis.
// Per-resource TTLs come from app.redis.ttl.<resource>.
func NewRedisClient() (*redis.Client, error) {
	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetIntOrDefault("app.redis.port", 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithDefaultCacheTTL(resource.GetDurationOrDefault("app.redis.default-ttl", 5*time.Minute))

	for name, value := range resource.GetStringMapString("app.redis.ttl") {
		if _, err := cachekey.Parse(name); err != nil {
			return nil, fmt.Errorf("invalid ttl entry app.redis.ttl.%s: %w", name, err)
		}
		ttl, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("invalid ttl for %s: %w", name, err)
		}
		config.WithCacheTTL(name, ttl)
	}

	return redis.NewClient(config)
}
