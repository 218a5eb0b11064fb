package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"hospital-admin/internal/domain/navigation"
)

// NavigationResponse is the rendered sidebar and the breadcrumb trail for one path
type NavigationResponse struct {
	Menu        []navigation.RenderedItem `json:"menu"`
	Breadcrumbs []navigation.Breadcrumb   `json:"breadcrumbs"`
}

type NavigationController struct {
	api  *echo.Group
	menu []navigation.Item
}

func NewNavigationController(api *echo.Group, menu []navigation.Item) *NavigationController {
	return &NavigationController{api: api, menu: menu}
}

// InitNavigationRoutes initializes navigation routes
func (controller *NavigationController) InitNavigationRoutes() {
	controller.api.GET("/navigation", controller.Render)
}

// Render godoc
// @Summary Render the sidebar
// @Description Sidebar entries with their variant, active and open flags plus breadcrumbs
// @Tags navigation
// @Produce json
// @Param path query string false "Current path" default(/)
// @Param collapsed query bool false "Sidebar collapsed"
// @Param mobile query bool false "Mobile viewport"
// @Success 200 {object} NavigationResponse
// @Router /navigation [get]
func (controller *NavigationController) Render(c echo.Context) error {
	state := navigation.RenderState{
		CurrentPath: c.QueryParam("path"),
		Collapsed:   queryBool(c, "collapsed"),
		IsMobile:    queryBool(c, "mobile"),
	}
	if state.CurrentPath == "" {
		state.CurrentPath = "/"
	}

	return c.JSON(http.StatusOK, NavigationResponse{
		Menu:        navigation.Render(controller.menu, state),
		Breadcrumbs: navigation.Breadcrumbs(controller.menu, state.CurrentPath),
	})
}

func queryBool(c echo.Context, name string) bool {
	value, err := strconv.ParseBool(c.QueryParam(name))
	return err == nil && value
}
