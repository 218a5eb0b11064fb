package processor

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/model"
)

type stubTicketUseCase struct {
	err error
}

func (s *stubTicketUseCase) Preview(model.QueueTicketForm) (string, error) { return "", nil }

func (s *stubTicketUseCase) Print(context.Context, model.QueueTicketForm) (*entity.PrintJob, error) {
	return nil, nil
}

func (s *stubTicketUseCase) Render(t entity.QueueTicket) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "TICKET " + t.Number, nil
}

func messageFor(t *testing.T, job entity.PrintJob) *types.Message {
	t.Helper()
	body, err := json.Marshal(job)
	require.NoError(t, err)
	return &types.Message{MessageId: aws.String("m-1"), Body: aws.String(string(body))}
}

func TestTicketProcessor_WritesCopiesToSpool(t *testing.T) {
	dir := t.TempDir()
	printer, err := NewSpoolPrinter(dir)
	require.NoError(t, err)

	p := NewTicketProcessor(&stubTicketUseCase{}, printer)
	job := entity.PrintJob{ID: "job-1", Ticket: entity.QueueTicket{Number: "A-007"}, Copies: 2, RequestedAt: time.Now()}

	require.NoError(t, p.HandleMessage(context.Background(), messageFor(t, job)))

	content, err := os.ReadFile(filepath.Join(dir, "job-1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "TICKET A-007\fTICKET A-007", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTicketProcessor_DefaultsToOneCopy(t *testing.T) {
	dir := t.TempDir()
	printer, err := NewSpoolPrinter(dir)
	require.NoError(t, err)

	p := NewTicketProcessor(&stubTicketUseCase{}, printer)
	require.NoError(t, p.HandleMessage(context.Background(), messageFor(t, entity.PrintJob{ID: "job-2", Ticket: entity.QueueTicket{Number: "B-1"}})))

	content, err := os.ReadFile(filepath.Join(dir, "job-2.txt"))
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(content), "\f"))
}

func TestTicketProcessor_CapsCopies(t *testing.T) {
	dir := t.TempDir()
	printer, err := NewSpoolPrinter(dir)
	require.NoError(t, err)

	p := NewTicketProcessor(&stubTicketUseCase{}, printer)
	job := entity.PrintJob{ID: "job-4", Ticket: entity.QueueTicket{Number: "C-9"}, Copies: 50}
	require.NoError(t, p.HandleMessage(context.Background(), messageFor(t, job)))

	content, err := os.ReadFile(filepath.Join(dir, "job-4.txt"))
	require.NoError(t, err)
	assert.Equal(t, entity.MaxPrintCopies-1, strings.Count(string(content), "\f"))
}

func TestTicketProcessor_Rejects(t *testing.T) {
	printer, err := NewSpoolPrinter(t.TempDir())
	require.NoError(t, err)

	t.Run("nil message", func(t *testing.T) {
		assert.Error(t, NewTicketProcessor(&stubTicketUseCase{}, printer).HandleMessage(context.Background(), nil))
	})

	t.Run("invalid body", func(t *testing.T) {
		message := &types.Message{Body: aws.String("{not json")}
		assert.Error(t, NewTicketProcessor(&stubTicketUseCase{}, printer).HandleMessage(context.Background(), message))
	})

	t.Run("missing id", func(t *testing.T) {
		assert.Error(t, NewTicketProcessor(&stubTicketUseCase{}, printer).HandleMessage(context.Background(), messageFor(t, entity.PrintJob{})))
	})

	t.Run("render failure", func(t *testing.T) {
		renderErr := errors.New("bad template")
		err := NewTicketProcessor(&stubTicketUseCase{err: renderErr}, printer).
			HandleMessage(context.Background(), messageFor(t, entity.PrintJob{ID: "job-3"}))
		assert.ErrorIs(t, err, renderErr)
	})
}
