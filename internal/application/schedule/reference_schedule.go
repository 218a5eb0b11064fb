package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"hospital-admin/pkg/log"
	"hospital-admin/pkg/msg"
)

// Warmer loads the first page of a resource into the query cache
type Warmer interface {
	Warm(ctx context.Context, perPage int) error
}

// ReferenceScheduler keeps rarely changing lookup lists (categories, units, ...) cached
type ReferenceScheduler struct {
	scheduler gocron.Scheduler
	interval  time.Duration
	perPage   int
	warmers   map[string]Warmer
}

func NewReferenceScheduler(interval time.Duration, perPage int, warmers map[string]Warmer) (*ReferenceScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create reference scheduler: %w", err)
	}
	return &ReferenceScheduler{
		scheduler: scheduler,
		interval:  interval,
		perPage:   perPage,
		warmers:   warmers,
	}, nil
}

// InitReferenceScheduleTasks schedules the warmup at a fixed interval, starting immediately.
func (s *ReferenceScheduler) InitReferenceScheduleTasks(ctx context.Context) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() { s.WarmAll(ctx) }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule reference warmup: %w", err)
	}

	s.scheduler.Start()
	return nil
}

// WarmAll warms every resource and returns how many failed.
func (s *ReferenceScheduler) WarmAll(ctx context.Context) int {
	log.Debug(msg.GetMessage("reference-warmup.start"))

	failed := 0
	for name, warmer := range s.warmers {
		if err := warmer.Warm(ctx, s.perPage); err != nil {
			failed++
			log.Warn(msg.GetMessage("reference-warmup.failed", name, err))
		}
	}
	return failed
}

// Stop gracefully stops the scheduler
func (s *ReferenceScheduler) Stop() {
	if err := s.scheduler.Shutdown(); err != nil {
		log.Errorf("Failed to stop reference scheduler: %v", err)
	}
}
