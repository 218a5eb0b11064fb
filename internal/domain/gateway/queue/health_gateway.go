package queue

import (
	"hospital-admin/internal/domain/model"
	"hospital-admin/pkg/sqs"
)

// Worker is the part of a queue consumer the health gateway needs
type Worker interface {
	HealthCheck() sqs.WorkerHealth
}

type HealthGateway interface {
	Health() model.ComponentHealthStatus
	RegisterWorker(name string, worker Worker)
	UnregisterWorker(name string)
}
