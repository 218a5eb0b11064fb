package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-admin/internal/domain/cachekey"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/model"
	"hospital-admin/internal/domain/navigation"
	"hospital-admin/internal/domain/pagination"
	"hospital-admin/internal/domain/usecase/resource"
)

type fakeUnitUseCase struct {
	lastQuery model.ListQuery
	units     map[int64]entity.Unit
	err       error
}

func (uc *fakeUnitUseCase) Key() cachekey.Key { return cachekey.Units }

func (uc *fakeUnitUseCase) List(_ context.Context, query model.ListQuery) (*model.Page[entity.Unit], error) {
	uc.lastQuery = query
	if uc.err != nil {
		return nil, uc.err
	}
	content := make([]entity.Unit, 0, len(uc.units))
	for _, u := range uc.units {
		content = append(content, u)
	}
	return model.NewPage(content, pagination.NewState(query.Page, query.PerPage, len(content))), nil
}

func (uc *fakeUnitUseCase) Get(_ context.Context, id int64) (*entity.Unit, error) {
	if u, ok := uc.units[id]; ok {
		return &u, nil
	}
	return nil, resource.ErrNotFound
}

func (uc *fakeUnitUseCase) Create(_ context.Context, form model.UnitForm) (*entity.Unit, error) {
	if err := model.ValidateForm(form); err != nil {
		return nil, err
	}
	if uc.err != nil {
		return nil, uc.err
	}
	return &entity.Unit{ID: 9, Name: form.Name, Symbol: form.Symbol}, nil
}

func (uc *fakeUnitUseCase) Update(_ context.Context, id int64, form model.UnitForm) (*entity.Unit, error) {
	if _, ok := uc.units[id]; !ok {
		return nil, resource.ErrNotFound
	}
	return &entity.Unit{ID: id, Name: form.Name, Symbol: form.Symbol}, nil
}

func (uc *fakeUnitUseCase) Delete(_ context.Context, id int64) error {
	if _, ok := uc.units[id]; !ok {
		return resource.ErrNotFound
	}
	return nil
}

func (uc *fakeUnitUseCase) Warm(context.Context, int) error { return nil }

func newUnitServer(uc *fakeUnitUseCase) *echo.Echo {
	e := echo.New()
	NewResourceController[entity.Unit, model.UnitForm](e.Group("/api/v1"), "/units", "unit", ListDefaults{PerPage: 15, MaxPerPage: 100}, uc).
		InitResourceRoutes()
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestResourceController_ListQueryDefaults(t *testing.T) {
	uc := &fakeUnitUseCase{units: map[int64]entity.Unit{1: {ID: 1, Name: "Tablet"}}}
	e := newUnitServer(uc)

	rec := serve(e, http.MethodGet, "/api/v1/units?perPage=500&page=-2&q=tab", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ListQuery{Page: 1, PerPage: 100, Search: "tab"}, uc.lastQuery)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "pagination")

	serve(e, http.MethodGet, "/api/v1/units", "")
	assert.Equal(t, model.ListQuery{Page: 1, PerPage: 15}, uc.lastQuery)
}

func TestResourceController_ErrorStatuses(t *testing.T) {
	uc := &fakeUnitUseCase{units: map[int64]entity.Unit{1: {ID: 1, Name: "Tablet", Symbol: "tab"}}}
	e := newUnitServer(uc)

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/api/v1/units/1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodGet, "/api/v1/units/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(e, http.MethodGet, "/api/v1/units/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(e, http.MethodPost, "/api/v1/units", `{"name":""}`).Code)
	assert.Equal(t, http.StatusCreated, serve(e, http.MethodPost, "/api/v1/units", `{"name":"Box","symbol":"box"}`).Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodPut, "/api/v1/units/1", `{"name":"Box","symbol":"box"}`).Code)
	assert.Equal(t, http.StatusNoContent, serve(e, http.MethodDelete, "/api/v1/units/1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodDelete, "/api/v1/units/5", "").Code)

	uc.err = &resource.RejectedError{Message: "symbol taken", Fields: map[string][]string{"symbol": {"taken"}}}
	rec := serve(e, http.MethodPost, "/api/v1/units", `{"name":"Box","symbol":"box"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "taken")

	uc.err = errors.Join(resource.ErrUnavailable, errors.New("dial tcp"))
	assert.Equal(t, http.StatusBadGateway, serve(e, http.MethodGet, "/api/v1/units", "").Code)
}

func TestPaginationController_Window(t *testing.T) {
	e := echo.New()
	NewPaginationController(e.Group("")).InitPaginationRoutes()

	rec := serve(e, http.MethodGet, "/pagination/window?page=5&lastPage=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"kind":"page","page":1},{"kind":"ellipsis"},
		{"kind":"page","page":4},{"kind":"page","page":5},{"kind":"page","page":6},
		{"kind":"ellipsis"},{"kind":"page","page":10}]`, rec.Body.String())

	rec = serve(e, http.MethodGet, "/pagination/window?page=9223372036854775807&lastPage=9223372036854775807", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"kind":"page","page":1},{"kind":"ellipsis"},
		{"kind":"page","page":9223372036854775806},{"kind":"page","page":9223372036854775807}]`, rec.Body.String())
}

func TestPaginationController_Request(t *testing.T) {
	e := echo.New()
	NewPaginationController(e.Group("")).InitPaginationRoutes()
	state := `{"page":2,"perPage":10,"total":30,"lastPage":3}`

	rec := serve(e, http.MethodPost, "/pagination/request", `{"state":`+state+`,"target":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"page":3}`, rec.Body.String())

	rec = serve(e, http.MethodPost, "/pagination/request", `{"state":`+state+`,"target":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"skip":true}`, rec.Body.String())

	rec = serve(e, http.MethodPost, "/pagination/request", `{"state":`+state+`,"target":4}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = serve(e, http.MethodPost, "/pagination/request", `{"state":`+state+`,"move":"prev"}`)
	assert.JSONEq(t, `{"page":1}`, rec.Body.String())

	rec = serve(e, http.MethodPost, "/pagination/request", `{"state":`+state+`}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNavigationController(t *testing.T) {
	e := echo.New()
	NewNavigationController(e.Group(""), navigation.DefaultMenu()).InitNavigationRoutes()

	rec := serve(e, http.MethodGet, "/navigation?path=/stocks/3/edit&collapsed=true", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response NavigationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Breadcrumbs, 5)
	assert.Equal(t, "Stocks", response.Breadcrumbs[2].Title)
	assert.Equal(t, "Edit", response.Breadcrumbs[4].Title)

	for _, item := range response.Menu {
		if item.Title == "Inventory" {
			assert.Equal(t, navigation.FlyoutMenu, item.Variant)
			assert.True(t, item.Active)
		}
	}
}
