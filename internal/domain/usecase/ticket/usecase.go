package ticket

import (
	"context"

	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/model"
)

type UseCase interface {
	// Preview renders the ticket without printing it.
	Preview(form model.QueueTicketForm) (string, error)
	// Print enqueues a print job for the ticket.
	Print(ctx context.Context, form model.QueueTicketForm) (*entity.PrintJob, error)
	// Render renders an already issued ticket, used by the print worker.
	Render(ticket entity.QueueTicket) (string, error)
}
