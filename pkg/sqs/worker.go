package sqs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"hospital-admin/pkg/log"
)

// HandlerFunc defines a function that handles a SQS Message
type HandlerFunc func(ctx context.Context, msg *types.Message) error

// HandleMessage implements the Handler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(ctx context.Context, msg *types.Message) error {
	return f(ctx, msg)
}

// Handler defines an interface that processes a SQS Message
type Handler interface {
	HandleMessage(ctx context.Context, msg *types.Message) error
}

// WorkerAPI is the subset of the SQS client used by Worker
type WorkerAPI interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// WorkerConfig defines the configuration options for a Worker
type WorkerConfig struct {
	MaxNumberOfMessages int32
	WaitTimeSeconds     int32
	PoolSize            int
	// ErrorDelay is the pause after a failed receive call.
	ErrorDelay time.Duration
}

// HealthStatus mirrors the application health values for a worker
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// WorkerHealth is the health snapshot of a worker
type WorkerHealth struct {
	Status  HealthStatus
	Details map[string]string
}

// Worker polls and processes messages from a SQS queue
type Worker struct {
	sqsClient           WorkerAPI
	queueName           string
	queueURL            string
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	poolSize            int
	errorDelay          time.Duration
	handler             Handler

	running   atomic.Bool
	processed atomic.Int64
	failed    atomic.Int64
	lastError atomic.Value
}

// NewWorker creates and returns a new Worker.
//
// Zero config values default to 10 messages per receive, 20 seconds of long polling,
// one poller and a one second pause after receive errors.
func NewWorker(ctx context.Context, sqsClient WorkerAPI, queueName string, handler Handler, config *WorkerConfig) (*Worker, error) {
	var maxMessages int32 = 10
	var waitTime int32 = 20
	poolSize := 1
	errorDelay := time.Second

	if config != nil {
		if config.MaxNumberOfMessages != 0 {
			maxMessages = config.MaxNumberOfMessages
		}
		if config.WaitTimeSeconds != 0 {
			waitTime = config.WaitTimeSeconds
		}
		if config.PoolSize != 0 {
			poolSize = config.PoolSize
		}
		if config.ErrorDelay != 0 {
			errorDelay = config.ErrorDelay
		}
	}

	if maxMessages < 1 || maxMessages > 10 {
		return nil, errors.New("maxNumberOfMessages must be between 1 and 10")
	}
	if waitTime < 1 || waitTime > 20 {
		return nil, errors.New("waitTimeSeconds must be between 1 and 20")
	}
	if poolSize < 1 {
		return nil, errors.New("poolSize must be greater than 0")
	}

	queueURL, err := getQueueURL(ctx, sqsClient, queueName)
	if err != nil {
		return nil, fmt.Errorf("unable to get queue URL: %w", err)
	}

	return &Worker{
		sqsClient:           sqsClient,
		queueName:           queueName,
		queueURL:            queueURL,
		maxNumberOfMessages: maxMessages,
		waitTimeSeconds:     waitTime,
		poolSize:            poolSize,
		errorDelay:          errorDelay,
		handler:             handler,
	}, nil
}

// Start polls with PoolSize goroutines until ctx is cancelled and waits for them to return.
func (w *Worker) Start(ctx context.Context) {
	w.running.Store(true)
	defer w.running.Store(false)

	var wg sync.WaitGroup
	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.pollMessages(ctx)
		}()
	}
	wg.Wait()
}

func (w *Worker) pollMessages(ctx context.Context) {
	for ctx.Err() == nil {
		output, err := w.sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:              &w.queueURL,
			MaxNumberOfMessages:   w.maxNumberOfMessages,
			WaitTimeSeconds:       w.waitTimeSeconds,
			MessageAttributeNames: []string{"All"},
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.lastError.Store(err.Error())
			log.Errorf("failed to receive messages from %s: %v", w.queueName, err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.errorDelay):
			}
			continue
		}

		for i := range output.Messages {
			w.handleMessage(ctx, &output.Messages[i])
		}
	}
}

func (w *Worker) handleMessage(ctx context.Context, msg *types.Message) {
	if err := w.handler.HandleMessage(ctx, msg); err != nil {
		w.failed.Add(1)
		w.lastError.Store(err.Error())
		log.Errorf("error processing message ID %s: %v", safeMessageID(msg), err)
		return
	}
	w.processed.Add(1)

	_, err := w.sqsClient.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      &w.queueURL,
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		log.Errorf("failed to delete message ID %s: %v", safeMessageID(msg), err)
		return
	}
	log.Debugf("successfully deleted message ID %s", safeMessageID(msg))
}

// HealthCheck reports whether the pollers are running plus processing counters.
func (w *Worker) HealthCheck() WorkerHealth {
	details := map[string]string{
		"queue":     w.queueName,
		"processed": strconv.FormatInt(w.processed.Load(), 10),
		"failed":    strconv.FormatInt(w.failed.Load(), 10),
	}
	if lastError, ok := w.lastError.Load().(string); ok {
		details["last_error"] = lastError
	}

	status := StatusDown
	if w.running.Load() {
		status = StatusUp
	}
	return WorkerHealth{Status: status, Details: details}
}

func safeMessageID(msg *types.Message) string {
	if msg == nil || msg.MessageId == nil {
		return ""
	}
	return *msg.MessageId
}
