package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"hospital-admin/internal/domain/model"
	"hospital-admin/internal/domain/pagination"
	"hospital-admin/internal/domain/usecase/resource"
	"hospital-admin/pkg/log"
	"hospital-admin/pkg/msg"
)

// ErrorResponse is the error body of every endpoint
type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// respondError maps domain errors to HTTP statuses.
func respondError(c echo.Context, name string, err error) error {
	var formErr *model.FormError
	if errors.As(err, &formErr) {
		fields := make(map[string][]string, len(formErr.Fields))
		for field, rule := range formErr.Fields {
			fields[field] = []string{rule}
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Fields: fields})
	}

	var rejected *resource.RejectedError
	if errors.As(err, &rejected) {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:  msg.GetMessage("resource.error.rejected", name, rejected.Message),
			Fields: rejected.Fields,
		})
	}

	switch {
	case errors.Is(err, resource.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: msg.GetMessage("resource.error.not-found", name)})
	case errors.Is(err, pagination.ErrOutOfRange):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, resource.ErrUnavailable):
		log.Errorf("%s backend call failed: %v", name, err)
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: msg.GetMessage("resource.error.unavailable")})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}
