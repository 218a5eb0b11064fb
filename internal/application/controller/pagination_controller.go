package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"hospital-admin/internal/domain/pagination"
	"hospital-admin/pkg/msg"
	"hospital-admin/pkg/util/numberutils"
)

// PageRequest asks for a page change from state, either to Target or by Move
type PageRequest struct {
	State  pagination.State `json:"state"`
	Target *int             `json:"target,omitempty"`
	Move   pagination.Move  `json:"move,omitempty"`
}

// PageResponse is the accepted page, or Skip when the page is already shown
type PageResponse struct {
	Page int  `json:"page,omitempty"`
	Skip bool `json:"skip,omitempty"`
}

type PaginationController struct {
	api *echo.Group
}

func NewPaginationController(api *echo.Group) *PaginationController {
	return &PaginationController{api: api}
}

// InitPaginationRoutes initializes pagination routes
func (controller *PaginationController) InitPaginationRoutes() {
	controller.api.GET("/pagination/window", controller.Window)
	controller.api.POST("/pagination/request", controller.Request)
}

// Window godoc
// @Summary Page window
// @Description Page markers around the current page, collapsed with ellipses
// @Tags pagination
// @Produce json
// @Param page query int false "Current page" default(1)
// @Param lastPage query int false "Last page" default(1)
// @Param siblings query int false "Siblings on each side" default(1)
// @Success 200 {array} pagination.Marker
// @Router /pagination/window [get]
func (controller *PaginationController) Window(c echo.Context) error {
	page := numberutils.ToIntWithDefault(c.QueryParam("page"), 1)
	lastPage := numberutils.ToIntWithDefault(c.QueryParam("lastPage"), 1)
	siblings := numberutils.ClampInt(
		numberutils.ToIntWithDefault(c.QueryParam("siblings"), pagination.DefaultSiblingCount), 0, 10)

	return c.JSON(http.StatusOK, pagination.ComputeWindow(page, lastPage, siblings))
}

// Request godoc
// @Summary Validate a page change
// @Description Returns the page to fetch, skip=true when it is already shown, 422 when out of range
// @Tags pagination
// @Accept json
// @Produce json
// @Param request body PageRequest true "Current state and target or move"
// @Success 200 {object} PageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /pagination/request [post]
func (controller *PaginationController) Request(c echo.Context) error {
	var request PageRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, msg.GetMessage("resource.error.invalid-body"))
	}

	var (
		page int
		err  error
	)
	switch {
	case request.Target != nil:
		page, err = pagination.RequestPage(request.State, *request.Target)
	case request.Move != "":
		page, err = pagination.RequestMove(request.State, request.Move)
	default:
		return badRequest(c, msg.GetMessage("pagination.error.invalid-request"))
	}

	switch {
	case errors.Is(err, pagination.ErrNoOp):
		return c.JSON(http.StatusOK, PageResponse{Skip: true})
	case errors.Is(err, pagination.ErrOutOfRange):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case err != nil:
		return respondError(c, "pagination", err)
	}
	return c.JSON(http.StatusOK, PageResponse{Page: page})
}
