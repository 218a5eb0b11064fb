package cache

import (
	"context"

	"hospital-admin/internal/domain/cachekey"
	"hospital-admin/internal/domain/model"
)

type noopQueryCache struct{}

// NewNoopQueryCache returns a QueryCache that never stores anything, used when Redis is disabled.
func NewNoopQueryCache() QueryCache {
	return noopQueryCache{}
}

func (noopQueryCache) Get(context.Context, cachekey.Key, string, any) error {
	return ErrMiss
}

func (noopQueryCache) Set(context.Context, cachekey.Key, string, any) error {
	return nil
}

func (noopQueryCache) Evict(context.Context, cachekey.Key, string) error {
	return nil
}

func (noopQueryCache) Invalidate(context.Context, ...cachekey.Key) (int, error) {
	return 0, nil
}

func (noopQueryCache) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"message": "cache disabled"},
	}
}
