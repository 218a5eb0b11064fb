package api

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/model"
	"hospital-admin/pkg/http"
)

func newTestGateway(t *testing.T, handler nethttp.HandlerFunc) ResourceGateway[entity.Unit, model.UnitForm] {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := http.NewHttpClient(server.URL, http.ClientOptions{})
	return NewResourceGateway[entity.Unit, model.UnitForm]("units", "/unit/", client)
}

func TestResourceGateway_List(t *testing.T) {
	gateway := newTestGateway(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/unit", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "15", r.URL.Query().Get("per_page"))
		assert.Equal(t, "tab", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":[{"id":16,"name":"Tablet","symbol":"tab"}],"meta":{"current_page":2,"per_page":15,"total":16,"last_page":2}}`)
	})

	envelope, err := gateway.List(context.Background(), model.ListQuery{Page: 2, PerPage: 15, Search: "tab"})
	require.NoError(t, err)
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Tablet", envelope.Data[0].Name)
	assert.Equal(t, model.Meta{CurrentPage: 2, PerPage: 15, Total: 16, LastPage: 2}, envelope.Meta)
}

func TestResourceGateway_CreateSendsForm(t *testing.T) {
	gateway := newTestGateway(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		var form model.UnitForm
		require.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		assert.Equal(t, "Box", form.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusCreated)
		_, _ = io.WriteString(w, `{"data":{"id":3,"name":"Box","symbol":"box"}}`)
	})

	unit, err := gateway.Create(context.Background(), model.UnitForm{Name: "Box", Symbol: "box"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), unit.ID)
}

func TestResourceGateway_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"not found", nethttp.StatusNotFound, `{"message":"missing"}`, ErrNotFound},
		{"rejected", nethttp.StatusUnprocessableEntity, `{"message":"symbol taken","errors":{"symbol":["taken"]}}`, ErrRejected},
		{"server error", nethttp.StatusInternalServerError, `{"message":"boom"}`, ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := newTestGateway(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := gateway.Update(context.Background(), 9, model.UnitForm{Name: "Box", Symbol: "box"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestResourceGateway_RejectedCarriesFields(t *testing.T) {
	gateway := newTestGateway(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"message":"symbol taken","errors":{"symbol":["taken"]}}`)
	})

	_, err := gateway.Create(context.Background(), model.UnitForm{Name: "Box", Symbol: "box"})
	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "symbol taken", rejected.Message)
	assert.Equal(t, []string{"taken"}, rejected.Fields["symbol"])
}

func TestResourceGateway_Delete(t *testing.T) {
	gateway := newTestGateway(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodDelete, r.Method)
		assert.Equal(t, "/unit/7", r.URL.Path)
		w.WriteHeader(nethttp.StatusNoContent)
	})

	assert.NoError(t, gateway.Delete(context.Background(), 7))
}

func TestBackendHealthGateway(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusUnauthorized)
	}))
	defer server.Close()

	up := NewBackendHealthGateway(http.NewHttpClient(server.URL, http.ClientOptions{}), "/", time.Second)
	assert.Equal(t, model.StatusUp, up.Health(context.Background()).Status)

	server.Close()
	down := NewBackendHealthGateway(http.NewHttpClient(server.URL, http.ClientOptions{}), "/", time.Second)
	assert.Equal(t, model.StatusDown, down.Health(context.Background()).Status)
}
