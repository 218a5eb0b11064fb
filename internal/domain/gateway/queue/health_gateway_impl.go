package queue

import (
	"sort"
	"strings"
	"sync"

	"hospital-admin/internal/domain/model"
	"hospital-admin/pkg/sqs"
	"hospital-admin/pkg/util/numberutils"
)

// QueueHealthGateway reports the consumers of the print queues as one component.
// Worker details are namespaced as <worker>.<detail>.
type QueueHealthGateway struct {
	mu      sync.RWMutex
	workers map[string]Worker
}

func NewQueueHealthGateway() *QueueHealthGateway {
	return &QueueHealthGateway{workers: make(map[string]Worker)}
}

func (g *QueueHealthGateway) RegisterWorker(name string, worker Worker) {
	g.mu.Lock()
	g.workers[name] = worker
	g.mu.Unlock()
}

func (g *QueueHealthGateway) UnregisterWorker(name string) {
	g.mu.Lock()
	delete(g.workers, name)
	g.mu.Unlock()
}

// Health is UNKNOWN with no consumer registered and DOWN as soon as one consumer is down.
// The down detail lists the failing consumers by name.
func (g *QueueHealthGateway) Health() model.ComponentHealthStatus {
	g.mu.RLock()
	defer g.mu.RUnlock()

	details := map[string]string{"workers": numberutils.Itoa(len(g.workers))}
	if len(g.workers) == 0 {
		return model.ComponentHealthStatus{Status: model.StatusUnknown, Details: details}
	}

	var down []string
	for name, worker := range g.workers {
		report := worker.HealthCheck()
		details[name+".status"] = string(report.Status)
		for key, value := range report.Details {
			details[name+"."+key] = value
		}
		if report.Status != sqs.StatusUp {
			down = append(down, name)
		}
	}

	if len(down) == 0 {
		return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
	}
	sort.Strings(down)
	details["down"] = strings.Join(down, ",")
	return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
}
