package resource

import (
	"context"

	"hospital-admin/internal/domain/cachekey"
	"hospital-admin/internal/domain/gateway/api"
	"hospital-admin/internal/domain/model"
)

var (
	ErrNotFound    = api.ErrNotFound
	ErrRejected    = api.ErrRejected
	ErrUnavailable = api.ErrUnavailable
)

// RejectedError is returned when the backend refuses a write.
type RejectedError = api.RejectedError

// UseCase is the admin CRUD of one resource with cached reads.
type UseCase[T any, F any] interface {
	Key() cachekey.Key
	List(ctx context.Context, query model.ListQuery) (*model.Page[T], error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, form F) (*T, error)
	Update(ctx context.Context, id int64, form F) (*T, error)
	Delete(ctx context.Context, id int64) error
	// Warm loads the first page into the cache.
	Warm(ctx context.Context, perPage int) error
}
