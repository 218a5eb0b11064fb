package api

import (
	"errors"
	"fmt"
	nethttp "net/http"

	"hospital-admin/internal/domain/model"
)

var (
	// ErrNotFound is returned when the backend has no record for the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrRejected is returned when the backend refuses a write (HTTP 422).
	ErrRejected = errors.New("rejected by backend")
	// ErrUnavailable covers transport failures and unexpected backend statuses.
	ErrUnavailable = errors.New("backend unavailable")
)

// RejectedError carries the backend validation message and field errors of a rejected write.
type RejectedError struct {
	Message string
	Fields  map[string][]string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRejected.Error(), e.Message)
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}

// translateError maps a pkg/http failure to one of the gateway errors.
func translateError(resource string, status int, errResp any, err error) error {
	switch status {
	case nethttp.StatusNotFound:
		return fmt.Errorf("%s: %w", resource, ErrNotFound)
	case nethttp.StatusUnprocessableEntity:
		rejected := &RejectedError{Message: "validation failed"}
		if body, ok := errResp.(*model.BackendError); ok && body != nil {
			if body.Message != "" {
				rejected.Message = body.Message
			}
			rejected.Fields = body.Errors
		}
		return rejected
	default:
		return fmt.Errorf("%s: %w: %w", resource, ErrUnavailable, err)
	}
}
