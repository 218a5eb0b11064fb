package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hospital-admin/internal/domain/model"
	"hospital-admin/internal/domain/usecase/resource"
	"hospital-admin/pkg/msg"
	"hospital-admin/pkg/util/numberutils"
)

// ListDefaults are the page size limits applied to list queries
type ListDefaults struct {
	PerPage    int
	MaxPerPage int
}

// ResourceController serves the CRUD routes of one admin resource
type ResourceController[T any, F any] struct {
	api      *echo.Group
	route    string
	name     string
	defaults ListDefaults
	useCase  resource.UseCase[T, F]
}

func NewResourceController[T any, F any](api *echo.Group, route string, name string, defaults ListDefaults, useCase resource.UseCase[T, F]) *ResourceController[T, F] {
	if defaults.PerPage < 1 {
		defaults.PerPage = 15
	}
	if defaults.MaxPerPage < defaults.PerPage {
		defaults.MaxPerPage = 100
	}
	return &ResourceController[T, F]{api: api, route: route, name: name, defaults: defaults, useCase: useCase}
}

// InitResourceRoutes initializes the resource CRUD routes
func (controller *ResourceController[T, F]) InitResourceRoutes() {
	controller.api.GET(controller.route, controller.List)
	controller.api.GET(controller.route+"/:id", controller.Get)
	controller.api.POST(controller.route, controller.Create)
	controller.api.PUT(controller.route+"/:id", controller.Update)
	controller.api.DELETE(controller.route+"/:id", controller.Delete)
}

// List godoc
// @Summary List resource records
// @Description One page of records with its pagination label, page markers and prev/next flags
// @Tags resources
// @Produce json
// @Param resource path string true "Resource route, e.g. patients"
// @Param page query int false "Page number" default(1)
// @Param perPage query int false "Page size" default(15)
// @Param q query string false "Search text"
// @Success 200 {object} map[string]any "Paginated records"
// @Failure 502 {object} ErrorResponse "Backend unavailable"
// @Router /{resource} [get]
func (controller *ResourceController[T, F]) List(c echo.Context) error {
	query := model.ListQuery{
		Page: numberutils.ToPositiveIntWithDefault(c.QueryParam("page"), 1),
		PerPage: numberutils.ClampInt(
			numberutils.ToPositiveIntWithDefault(c.QueryParam("perPage"), controller.defaults.PerPage),
			1, controller.defaults.MaxPerPage),
		Search: c.QueryParam("q"),
	}

	page, err := controller.useCase.List(c.Request().Context(), query)
	if err != nil {
		return respondError(c, controller.name, err)
	}
	return c.JSON(http.StatusOK, page)
}

// Get godoc
// @Summary Get a resource record
// @Tags resources
// @Produce json
// @Param resource path string true "Resource route"
// @Param id path int true "Record id"
// @Success 200 {object} map[string]any "Record"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Router /{resource}/{id} [get]
func (controller *ResourceController[T, F]) Get(c echo.Context) error {
	id, ok := controller.parseID(c)
	if !ok {
		return badRequest(c, msg.GetMessage("resource.error.invalid-id", controller.name))
	}

	record, err := controller.useCase.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, controller.name, err)
	}
	return c.JSON(http.StatusOK, record)
}

// Create godoc
// @Summary Create a resource record
// @Tags resources
// @Accept json
// @Produce json
// @Param resource path string true "Resource route"
// @Success 201 {object} map[string]any "Created record"
// @Failure 400 {object} ErrorResponse "Invalid form"
// @Failure 422 {object} ErrorResponse "Rejected by backend"
// @Router /{resource} [post]
func (controller *ResourceController[T, F]) Create(c echo.Context) error {
	var form F
	if err := c.Bind(&form); err != nil {
		return badRequest(c, msg.GetMessage("resource.error.invalid-body"))
	}

	record, err := controller.useCase.Create(c.Request().Context(), form)
	if err != nil {
		return respondError(c, controller.name, err)
	}
	return c.JSON(http.StatusCreated, record)
}

// Update godoc
// @Summary Update a resource record
// @Tags resources
// @Accept json
// @Produce json
// @Param resource path string true "Resource route"
// @Param id path int true "Record id"
// @Success 200 {object} map[string]any "Updated record"
// @Failure 400 {object} ErrorResponse "Invalid form"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Router /{resource}/{id} [put]
func (controller *ResourceController[T, F]) Update(c echo.Context) error {
	id, ok := controller.parseID(c)
	if !ok {
		return badRequest(c, msg.GetMessage("resource.error.invalid-id", controller.name))
	}

	var form F
	if err := c.Bind(&form); err != nil {
		return badRequest(c, msg.GetMessage("resource.error.invalid-body"))
	}

	record, err := controller.useCase.Update(c.Request().Context(), id, form)
	if err != nil {
		return respondError(c, controller.name, err)
	}
	return c.JSON(http.StatusOK, record)
}

// Delete godoc
// @Summary Delete a resource record
// @Tags resources
// @Param resource path string true "Resource route"
// @Param id path int true "Record id"
// @Success 204 "Record deleted"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Router /{resource}/{id} [delete]
func (controller *ResourceController[T, F]) Delete(c echo.Context) error {
	id, ok := controller.parseID(c)
	if !ok {
		return badRequest(c, msg.GetMessage("resource.error.invalid-id", controller.name))
	}

	if err := controller.useCase.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, controller.name, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (controller *ResourceController[T, F]) parseID(c echo.Context) (int64, bool) {
	raw := c.Param("id")
	if !numberutils.IsDigits(raw) {
		return 0, false
	}
	id, err := numberutils.ToInt64WithError(raw)
	return id, err == nil && id > 0
}
