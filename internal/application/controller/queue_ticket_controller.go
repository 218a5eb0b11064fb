package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hospital-admin/internal/domain/model"
	"hospital-admin/internal/domain/usecase/ticket"
	"hospital-admin/pkg/msg"
)

// TicketPreviewResponse carries the rendered ticket text
type TicketPreviewResponse struct {
	Text string `json:"text"`
}

type QueueTicketController struct {
	api     *echo.Group
	useCase ticket.UseCase
}

func NewQueueTicketController(api *echo.Group, useCase ticket.UseCase) *QueueTicketController {
	return &QueueTicketController{api: api, useCase: useCase}
}

// InitQueueTicketRoutes initializes queue ticket routes
func (controller *QueueTicketController) InitQueueTicketRoutes() {
	controller.api.POST("/queue-tickets/preview", controller.Preview)
	controller.api.POST("/queue-tickets/print", controller.Print)
}

// Preview godoc
// @Summary Preview a queue ticket
// @Tags queue-tickets
// @Accept json
// @Produce json
// @Param ticket body model.QueueTicketForm true "Ticket"
// @Success 200 {object} TicketPreviewResponse
// @Failure 400 {object} ErrorResponse
// @Router /queue-tickets/preview [post]
func (controller *QueueTicketController) Preview(c echo.Context) error {
	var form model.QueueTicketForm
	if err := c.Bind(&form); err != nil {
		return badRequest(c, msg.GetMessage("resource.error.invalid-body"))
	}

	text, err := controller.useCase.Preview(form)
	if err != nil {
		return respondError(c, "queue ticket", err)
	}
	return c.JSON(http.StatusOK, TicketPreviewResponse{Text: text})
}

// Print godoc
// @Summary Print a queue ticket
// @Description Enqueues a print job for the ticket printer
// @Tags queue-tickets
// @Accept json
// @Produce json
// @Param ticket body model.QueueTicketForm true "Ticket"
// @Success 202 {object} entity.PrintJob
// @Failure 400 {object} ErrorResponse
// @Router /queue-tickets/print [post]
func (controller *QueueTicketController) Print(c echo.Context) error {
	var form model.QueueTicketForm
	if err := c.Bind(&form); err != nil {
		return badRequest(c, msg.GetMessage("resource.error.invalid-body"))
	}

	job, err := controller.useCase.Print(c.Request().Context(), form)
	if err != nil {
		return respondError(c, "queue ticket", err)
	}
	return c.JSON(http.StatusAccepted, job)
}
