package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SenderAPI is the subset of the SQS client used by Sender
type SenderAPI interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Sender serializes bodies to JSON and sends them to SQS queues
type Sender struct {
	sqsClient SenderAPI

	mu        sync.RWMutex
	queueURLs map[string]string
}

// NewSender creates and returns a new Sender
func NewSender(sqsClient SenderAPI) *Sender {
	return &Sender{
		sqsClient: sqsClient,
		queueURLs: make(map[string]string),
	}
}

// SendMessage serializes body to JSON and sends it to queueName with optional string attributes.
// It returns the SQS message id.
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) (string, error) {
	queueURL, err := s.queueURL(ctx, queueName)
	if err != nil {
		return "", fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	messageBody := string(jsonBody)
	input := &sqs.SendMessageInput{
		QueueUrl:    &queueURL,
		MessageBody: &messageBody,
	}
	if len(attributes) > 0 {
		input.MessageAttributes = make(map[string]types.MessageAttributeValue, len(attributes))
		for key, value := range attributes {
			input.MessageAttributes[key] = types.MessageAttributeValue{
				DataType:    stringPtr("String"),
				StringValue: stringPtr(value),
			}
		}
	}

	output, err := s.sqsClient.SendMessage(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to send message to queue %s: %w", queueName, err)
	}
	if output.MessageId == nil {
		return "", nil
	}
	return *output.MessageId, nil
}

// queueURL resolves and memoizes the URL for queueName
func (s *Sender) queueURL(ctx context.Context, queueName string) (string, error) {
	s.mu.RLock()
	cached, ok := s.queueURLs[queueName]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	url, err := getQueueURL(ctx, s.sqsClient, queueName)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.queueURLs[queueName] = url
	s.mu.Unlock()
	return url, nil
}

type queueURLResolver interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
}

func getQueueURL(ctx context.Context, client queueURLResolver, queueName string) (string, error) {
	result, err := client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return "", err
	}
	if result.QueueUrl == nil {
		return "", fmt.Errorf("queue URL is nil for queue %s", queueName)
	}
	return *result.QueueUrl, nil
}

func stringPtr(s string) *string {
	return &s
}
