package health

import (
	"context"
	"sync"

	"hospital-admin/internal/domain/gateway/api"
	"hospital-admin/internal/domain/gateway/cache"
	"hospital-admin/internal/domain/gateway/queue"
	"hospital-admin/internal/domain/model"
)

type healthUseCase struct {
	queryCache     cache.QueryCache
	backendGateway api.BackendHealthGateway
	queueGateway   queue.HealthGateway
}

func NewHealthUseCase(queryCache cache.QueryCache, backendGateway api.BackendHealthGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		queryCache:     queryCache,
		backendGateway: backendGateway,
		queueGateway:   queueGateway,
	}
}

// CheckHealth checks the cache and the backend in parallel. The service is DOWN when the
// backend or a registered queue worker is down; a missing cache only degrades latency.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	var (
		wg            sync.WaitGroup
		cacheHealth   model.ComponentHealthStatus
		backendHealth model.ComponentHealthStatus
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		cacheHealth = useCase.queryCache.Health(ctx)
	}()
	go func() {
		defer wg.Done()
		backendHealth = useCase.backendGateway.Health(ctx)
	}()
	wg.Wait()

	queueHealth := useCase.queueGateway.Health()

	overallStatus := model.StatusUp
	if backendHealth.Status != model.StatusUp || queueHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:  overallStatus,
		Cache:   cacheHealth,
		Backend: backendHealth,
		Queue:   queueHealth,
	}
}
