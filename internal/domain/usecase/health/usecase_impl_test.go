package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"hospital-admin/internal/domain/gateway/cache"
	"hospital-admin/internal/domain/gateway/queue"
	"hospital-admin/internal/domain/model"
	"hospital-admin/pkg/sqs"
)

type stubBackend struct {
	status model.HealthStatus
}

func (b stubBackend) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: b.status}
}

type stubWorker struct {
	status sqs.HealthStatus
}

func (w stubWorker) HealthCheck() sqs.WorkerHealth {
	return sqs.WorkerHealth{Status: w.status}
}

func TestCheckHealth(t *testing.T) {
	queues := queue.NewQueueHealthGateway()
	uc := NewHealthUseCase(cache.NewNoopQueryCache(), stubBackend{model.StatusUp}, queues)

	response := uc.CheckHealth(context.Background())
	assert.Equal(t, model.StatusUp, response.Status)
	assert.Equal(t, model.StatusUnknown, response.Cache.Status)
	assert.Equal(t, model.StatusUnknown, response.Queue.Status)

	queues.RegisterWorker("print", stubWorker{sqs.StatusDown})
	assert.Equal(t, model.StatusDown, uc.CheckHealth(context.Background()).Status)
}

func TestCheckHealth_BackendDown(t *testing.T) {
	uc := NewHealthUseCase(cache.NewNoopQueryCache(), stubBackend{model.StatusDown}, queue.NewQueueHealthGateway())
	assert.Equal(t, model.StatusDown, uc.CheckHealth(context.Background()).Status)
}
