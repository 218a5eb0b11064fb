package api

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hospital-admin/internal/domain/model"
	"hospital-admin/pkg/http"
)

type backendHealthGatewayImpl struct {
	httpClient *http.Client
	path       string
	timeout    time.Duration
}

// NewBackendHealthGateway calls path on the backend; any HTTP answer below 500 counts as UP.
func NewBackendHealthGateway(httpClient *http.Client, path string, timeout time.Duration) BackendHealthGateway {
	return &backendHealthGatewayImpl{
		httpClient: httpClient,
		path:       path,
		timeout:    timeout,
	}
}

func (g *backendHealthGatewayImpl) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := time.Now()
	_, _, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(g.path).
		WithBackoff(&http.BackoffConfig{}).
		Execute()

	details := map[string]string{
		"url":     g.httpClient.BaseURL() + g.path,
		"latency": time.Since(started).String(),
	}

	var statusErr *http.StatusError
	if err != nil && !(errors.As(err, &statusErr) && statusErr.StatusCode < 500) {
		details["message"] = err.Error()
		if status != 0 {
			details["status_code"] = strconv.Itoa(status)
		}
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}

	details["status_code"] = strconv.Itoa(status)
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
