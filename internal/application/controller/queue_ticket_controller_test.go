package controller

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/model"
	"hospital-admin/internal/domain/usecase/health"
	"hospital-admin/internal/domain/usecase/ticket"
)

type fakeTicketUseCase struct {
	printed []model.QueueTicketForm
}

func (uc *fakeTicketUseCase) Preview(form model.QueueTicketForm) (string, error) {
	if err := model.ValidateForm(form); err != nil {
		return "", err
	}
	return "TICKET " + form.Number, nil
}

func (uc *fakeTicketUseCase) Print(_ context.Context, form model.QueueTicketForm) (*entity.PrintJob, error) {
	uc.printed = append(uc.printed, form)
	return &entity.PrintJob{ID: "job-1", Copies: 1, Ticket: entity.QueueTicket{Number: form.Number}}, nil
}

func (uc *fakeTicketUseCase) Render(t entity.QueueTicket) (string, error) {
	return t.Number, nil
}

var _ ticket.UseCase = (*fakeTicketUseCase)(nil)

func TestQueueTicketController(t *testing.T) {
	uc := &fakeTicketUseCase{}
	e := echo.New()
	NewQueueTicketController(e.Group(""), uc).InitQueueTicketRoutes()

	rec := serve(e, http.MethodPost, "/queue-tickets/preview", `{"number":"A1","service":"lab"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"text":"TICKET A1"}`, rec.Body.String())

	rec = serve(e, http.MethodPost, "/queue-tickets/preview", `{"service":"lab"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(e, http.MethodPost, "/queue-tickets/print", `{"number":"A2","service":"lab"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, uc.printed, 1)
	assert.Equal(t, "A2", uc.printed[0].Number)
}

type fixedHealth struct {
	response model.HealthResponse
}

func (h fixedHealth) CheckHealth(context.Context) model.HealthResponse {
	return h.response
}

var _ health.UseCase = fixedHealth{}

func TestHealthController(t *testing.T) {
	e := echo.New()
	NewHealthController(e.Group(""), fixedHealth{model.HealthResponse{Status: model.StatusUp}}).InitHealthRoutes()
	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/health", "").Code)

	down := echo.New()
	NewHealthController(down.Group(""), fixedHealth{model.HealthResponse{Status: model.StatusDown}}).InitHealthRoutes()
	assert.Equal(t, http.StatusServiceUnavailable, serve(down, http.MethodGet, "/health", "").Code)
}
