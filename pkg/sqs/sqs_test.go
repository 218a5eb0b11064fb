package sqs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQS struct {
	mu          sync.Mutex
	urlLookups  int
	sent        []*sqs.SendMessageInput
	deleted     []string
	pending     []types.Message
	receiveErrs int
}

func (f *fakeSQS) GetQueueUrl(_ context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urlLookups++
	if *params.QueueName == "missing" {
		return nil, errors.New("queue does not exist")
	}
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("http://sqs.local/" + *params.QueueName)}, nil
}

func (f *fakeSQS) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, params)
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-1")}, nil
}

func (f *fakeSQS) ReceiveMessage(ctx context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	f.mu.Lock()
	if f.receiveErrs > 0 {
		f.receiveErrs--
		f.mu.Unlock()
		return nil, errors.New("throttled")
	}
	messages := f.pending
	f.pending = nil
	f.mu.Unlock()

	if len(messages) == 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Millisecond):
		}
	}
	return &sqs.ReceiveMessageOutput{Messages: messages}, nil
}

func (f *fakeSQS) DeleteMessage(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, *params.ReceiptHandle)
	return &sqs.DeleteMessageOutput{}, nil
}

func (f *fakeSQS) deletedHandles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

func TestSender_SendMessage(t *testing.T) {
	client := &fakeSQS{}
	sender := NewSender(client)

	id, err := sender.SendMessage(context.Background(), "tickets", map[string]string{"number": "A1"}, map[string]string{"type": "queue-ticket"})
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)

	_, err = sender.SendMessage(context.Background(), "tickets", map[string]string{"number": "A2"}, nil)
	require.NoError(t, err)

	require.Len(t, client.sent, 2)
	assert.Equal(t, 1, client.urlLookups, "queue url is resolved once")
	assert.Equal(t, "http://sqs.local/tickets", *client.sent[0].QueueUrl)
	assert.JSONEq(t, `{"number":"A1"}`, *client.sent[0].MessageBody)
	assert.Equal(t, "queue-ticket", *client.sent[0].MessageAttributes["type"].StringValue)
	assert.Empty(t, client.sent[1].MessageAttributes)
}

func TestSender_Errors(t *testing.T) {
	sender := NewSender(&fakeSQS{})

	_, err := sender.SendMessage(context.Background(), "missing", "x", nil)
	assert.ErrorContains(t, err, "failed to get queue URL")

	_, err = sender.SendMessage(context.Background(), "tickets", func() {}, nil)
	assert.ErrorContains(t, err, "failed to serialize")
}

func TestNewWorker_Validation(t *testing.T) {
	handler := HandlerFunc(func(context.Context, *types.Message) error { return nil })

	_, err := NewWorker(context.Background(), &fakeSQS{}, "tickets", handler, &WorkerConfig{MaxNumberOfMessages: 11})
	assert.Error(t, err)

	_, err = NewWorker(context.Background(), &fakeSQS{}, "tickets", handler, &WorkerConfig{WaitTimeSeconds: 21})
	assert.Error(t, err)

	_, err = NewWorker(context.Background(), &fakeSQS{}, "tickets", handler, &WorkerConfig{PoolSize: -1})
	assert.Error(t, err)

	_, err = NewWorker(context.Background(), &fakeSQS{}, "missing", handler, nil)
	assert.ErrorContains(t, err, "unable to get queue URL")
}

func TestWorker_ProcessesAndDeletes(t *testing.T) {
	client := &fakeSQS{
		receiveErrs: 1,
		pending: []types.Message{
			{MessageId: aws.String("1"), ReceiptHandle: aws.String("r-ok"), Body: aws.String("ok")},
			{MessageId: aws.String("2"), ReceiptHandle: aws.String("r-bad"), Body: aws.String("bad")},
		},
	}

	var handled atomic.Int32
	handler := HandlerFunc(func(_ context.Context, msg *types.Message) error {
		handled.Add(1)
		if *msg.Body == "bad" {
			return errors.New("cannot print")
		}
		return nil
	})

	worker, err := NewWorker(context.Background(), client, "tickets", handler, &WorkerConfig{ErrorDelay: time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, StatusDown, worker.HealthCheck().Status)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return handled.Load() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, StatusUp, worker.HealthCheck().Status)

	cancel()
	<-done

	health := worker.HealthCheck()
	assert.Equal(t, StatusDown, health.Status)
	assert.Equal(t, "1", health.Details["processed"])
	assert.Equal(t, "1", health.Details["failed"])
	assert.Equal(t, "cannot print", health.Details["last_error"])
	assert.Equal(t, []string{"r-ok"}, client.deletedHandles())
}
