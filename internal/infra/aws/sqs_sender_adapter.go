package aws

import (
	"context"

	"hospital-admin/internal/domain/gateway/queue"
	"hospital-admin/pkg/sqs"
)

// SQSSenderAdapter adapts the pkg/sqs.Sender to implement domain queue.Sender interface
type SQSSenderAdapter struct {
	sqsSender *sqs.Sender
}

func NewSQSSenderAdapter(sqsClient sqs.SenderAPI) queue.Sender {
	return &SQSSenderAdapter{
		sqsSender: sqs.NewSender(sqsClient),
	}
}

func (adapter *SQSSenderAdapter) SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) (string, error) {
	return adapter.sqsSender.SendMessage(ctx, queueName, body, attributes)
}
