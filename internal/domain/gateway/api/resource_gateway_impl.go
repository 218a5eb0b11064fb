package api

import (
	"context"
	"fmt"
	"strings"

	"hospital-admin/internal/domain/model"
	"hospital-admin/pkg/http"
)

// resourceGatewayImpl implements ResourceGateway over the shared backend HTTP client
type resourceGatewayImpl[T any, F any] struct {
	name       string
	basePath   string
	httpClient *http.Client
}

// NewResourceGateway creates a gateway for the resource served under basePath.
func NewResourceGateway[T any, F any](name string, basePath string, httpClient *http.Client) ResourceGateway[T, F] {
	return &resourceGatewayImpl[T, F]{
		name:       name,
		basePath:   "/" + strings.Trim(basePath, "/"),
		httpClient: httpClient,
	}
}

func (g *resourceGatewayImpl[T, F]) Name() string {
	return g.name
}

// List fetches one page of the resource
func (g *resourceGatewayImpl[T, F]) List(ctx context.Context, query model.ListQuery) (*model.ListEnvelope[T], error) {
	successResp, errResp, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(g.basePath).
		WithQueryParams(query.Params()).
		WithSuccessResp(&model.ListEnvelope[T]{}).
		WithErrorResp(&model.BackendError{}).
		Execute()

	if err != nil {
		return nil, translateError(g.name, status, errResp, err)
	}

	envelope, ok := successResp.(*model.ListEnvelope[T])
	if !ok {
		return nil, fmt.Errorf("%s: %w", g.name, ErrNotFound)
	}
	if envelope.Data == nil {
		envelope.Data = []T{}
	}
	return envelope, nil
}

// Get fetches a single record
func (g *resourceGatewayImpl[T, F]) Get(ctx context.Context, id int64) (*T, error) {
	return g.exchange(ctx, http.GET, recordPath(g.basePath, id), nil)
}

// Create posts a new record
func (g *resourceGatewayImpl[T, F]) Create(ctx context.Context, form F) (*T, error) {
	return g.exchange(ctx, http.POST, g.basePath, form)
}

// Update replaces a record
func (g *resourceGatewayImpl[T, F]) Update(ctx context.Context, id int64, form F) (*T, error) {
	return g.exchange(ctx, http.PUT, recordPath(g.basePath, id), form)
}

// Delete removes a record
func (g *resourceGatewayImpl[T, F]) Delete(ctx context.Context, id int64) error {
	_, errResp, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.DELETE).
		WithPath(recordPath(g.basePath, id)).
		WithErrorResp(&model.BackendError{}).
		Execute()

	if err != nil {
		return translateError(g.name, status, errResp, err)
	}
	return nil
}

func (g *resourceGatewayImpl[T, F]) exchange(ctx context.Context, method http.RequestMethod, path string, body any) (*T, error) {
	request := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(method).
		WithPath(path).
		WithSuccessResp(&model.DataEnvelope[T]{}).
		WithErrorResp(&model.BackendError{})
	if body != nil {
		request = request.WithBody(body)
	}

	successResp, errResp, status, err := request.Execute()
	if err != nil {
		return nil, translateError(g.name, status, errResp, err)
	}

	envelope, ok := successResp.(*model.DataEnvelope[T])
	if !ok {
		return nil, fmt.Errorf("%s: %w", g.name, ErrNotFound)
	}
	return &envelope.Data, nil
}
