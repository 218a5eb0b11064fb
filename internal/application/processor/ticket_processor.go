package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/usecase/ticket"
	"hospital-admin/pkg/log"
	"hospital-admin/pkg/msg"
	"hospital-admin/pkg/util/numberutils"
)

// Printer receives rendered tickets.
type Printer interface {
	Print(ctx context.Context, job entity.PrintJob, text string) (string, error)
}

type TicketProcessor struct {
	ticketUseCase ticket.UseCase
	printer       Printer
}

func NewTicketProcessor(ticketUseCase ticket.UseCase, printer Printer) *TicketProcessor {
	return &TicketProcessor{
		ticketUseCase: ticketUseCase,
		printer:       printer,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *TicketProcessor) HandleMessage(ctx context.Context, message *types.Message) error {
	if message == nil || message.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	var job entity.PrintJob
	if err := json.Unmarshal([]byte(*message.Body), &job); err != nil {
		return fmt.Errorf("failed to unmarshal print job: %w", err)
	}
	if job.ID == "" {
		return fmt.Errorf("print job without id")
	}
	job.Copies = numberutils.ClampInt(job.Copies, 1, entity.MaxPrintCopies)

	text, err := p.ticketUseCase.Render(job.Ticket)
	if err != nil {
		return err
	}

	target, err := p.printer.Print(ctx, job, text)
	if err != nil {
		return fmt.Errorf("failed to print job %s: %w", job.ID, err)
	}

	log.Info(msg.GetMessage("queue-ticket.printed", job.Ticket.Number, target))
	return nil
}
