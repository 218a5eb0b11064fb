package ticket

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/gateway/queue"
	"hospital-admin/internal/domain/model"
	"hospital-admin/pkg/log"
	"hospital-admin/pkg/msg"
)

type ticketUseCase struct {
	queueName   string
	renderer    *Renderer
	queueSender queue.Sender
	now         func() time.Time
}

func NewTicketUseCase(queueName string, renderer *Renderer, queueSender queue.Sender) UseCase {
	return &ticketUseCase{
		queueName:   queueName,
		renderer:    renderer,
		queueSender: queueSender,
		now:         time.Now,
	}
}

func (uc *ticketUseCase) Preview(form model.QueueTicketForm) (string, error) {
	if err := model.ValidateForm(form); err != nil {
		return "", err
	}
	return uc.Render(uc.issue(form))
}

func (uc *ticketUseCase) Print(ctx context.Context, form model.QueueTicketForm) (*entity.PrintJob, error) {
	if err := model.ValidateForm(form); err != nil {
		return nil, err
	}

	ticket := uc.issue(form)
	// rendering here surfaces template errors to the caller instead of the worker
	if _, err := uc.Render(ticket); err != nil {
		return nil, err
	}

	copies := form.Copies
	if copies == 0 {
		copies = 1
	}
	job := &entity.PrintJob{
		ID:          uuid.NewString(),
		Ticket:      ticket,
		Copies:      copies,
		RequestedAt: uc.now(),
	}

	messageID, err := uc.queueSender.SendMessage(ctx, uc.queueName, job, map[string]string{"type": "queue-ticket"})
	if err != nil {
		return nil, errors.New(msg.GetMessage("queue-ticket.error.enqueue-failed", ticket.Number, err))
	}

	log.Info(msg.GetMessage("queue-ticket.enqueued", ticket.Number, messageID))
	return job, nil
}

func (uc *ticketUseCase) Render(ticket entity.QueueTicket) (string, error) {
	text, err := uc.renderer.Render(ticket)
	if err != nil {
		return "", errors.New(msg.GetMessage("queue-ticket.error.render-failed", err))
	}
	return text, nil
}

func (uc *ticketUseCase) issue(form model.QueueTicketForm) entity.QueueTicket {
	return entity.QueueTicket{
		Number:      form.Number,
		Service:     form.Service,
		PatientName: form.PatientName,
		Counter:     form.Counter,
		IssuedAt:    uc.now(),
	}
}
