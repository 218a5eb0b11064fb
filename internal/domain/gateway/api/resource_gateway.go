package api

import (
	"context"
	"strconv"

	"hospital-admin/internal/domain/model"
)

// ResourceGateway is the backend CRUD API of one admin resource.
type ResourceGateway[T any, F any] interface {
	// Name is the resource name used in logs and errors.
	Name() string
	List(ctx context.Context, query model.ListQuery) (*model.ListEnvelope[T], error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, form F) (*T, error)
	Update(ctx context.Context, id int64, form F) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// BackendHealthGateway reports whether the backend API answers.
type BackendHealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

func recordPath(basePath string, id int64) string {
	return basePath + "/" + strconv.FormatInt(id, 10)
}
