package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unitDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type apiError struct {
	Message string `json:"message"`
}

func TestRequest_DecodesSuccessAndSendsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/unit", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "tablet strip", r.URL.Query().Get("search"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(unitDTO{ID: 3, Name: "Strip"})
	}))
	defer server.Close()

	client := NewHttpClient(server.URL+"/api/", ClientOptions{
		DefaultHeaders: map[string]string{"Authorization": "Bearer secret"},
	})

	resp, errResp, status, err := client.Request().
		WithPath("unit").
		WithQueryParams(map[string]string{"page": "2", "search": "tablet strip"}).
		WithSuccessResp(&unitDTO{}).
		Execute()

	require.NoError(t, err)
	assert.Nil(t, errResp)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, &unitDTO{ID: 3, Name: "Strip"}, resp)
}

func TestRequest_DecodesErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"nama wajib diisi"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})
	_, errResp, status, err := client.Request().
		WithMethod(POST).
		WithPath("/unit").
		WithBody(unitDTO{}).
		WithErrorResp(&apiError{}).
		Execute()

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.StatusCode)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "nama wajib diisi", errResp.(*apiError).Message)
}

func TestRequest_RetriesIdempotentRequests(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"id":1,"name":"Box"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{
		Backoff: NewBackoffConfig(2, time.Millisecond, 5*time.Millisecond),
	})

	resp, _, status, err := client.Request().WithPath("/unit/1").WithSuccessResp(&unitDTO{}).Execute()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Box", resp.(*unitDTO).Name)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRequest_DoesNotRetryPostByDefault(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{
		Backoff: NewBackoffConfig(3, time.Millisecond, time.Millisecond),
	})

	_, _, status, err := client.Request().WithMethod(POST).WithPath("/resep").WithBody(map[string]int{"x": 1}).Execute()
	assert.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRequest_StopsRetryingWhenContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{
		Backoff: NewBackoffConfig(5, time.Second, time.Second),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	started := time.Now()
	_, _, _, err := client.Request().WithContext(ctx).WithPath("/stock").Execute()
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(started), time.Second)
}

func TestRequest_Dismiss404(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{Dismiss404: true})
	resp, errResp, status, err := client.Request().WithPath("/pasien/9").WithSuccessResp(&unitDTO{}).Execute()
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.Nil(t, errResp)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestBackoffConfig_DelayIsCapped(t *testing.T) {
	b := NewBackoffConfig(5, 100*time.Millisecond, 300*time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, b.delay(0))
	assert.Equal(t, 200*time.Millisecond, b.delay(1))
	assert.Equal(t, 300*time.Millisecond, b.delay(2))
	assert.Equal(t, 300*time.Millisecond, b.delay(4))
}
