package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"hospital-admin/internal/domain/usecase/stockalert"
	"hospital-admin/pkg/log"
	"hospital-admin/pkg/msg"
	"hospital-admin/pkg/redis"
)

const stockScanLockKey = "low_stock_scan"

// StockSchedulerConfig holds configuration for the low stock scheduler
type StockSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// StockScheduler runs the low stock scan on a cron, one instance at a time across replicas
type StockScheduler struct {
	cron        *cron.Cron
	useCase     stockalert.UseCase
	redisClient *redis.Client
	config      StockSchedulerConfig
}

func NewStockScheduler(useCase stockalert.UseCase, redisClient *redis.Client, config StockSchedulerConfig) *StockScheduler {
	if config.LockTTL <= 0 {
		config.LockTTL = 10 * time.Minute
	}
	if config.RefreshInterval <= 0 || config.RefreshInterval >= config.LockTTL {
		config.RefreshInterval = config.LockTTL / 3
	}
	return &StockScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
	}
}

// InitStockScheduleTasks registers the scan and starts the cron. Runs stop with ctx.
func (s *StockScheduler) InitStockScheduleTasks(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.config.CronExpression, func() { s.ExecuteScheduledTask(ctx) })
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Infof("Low stock scheduler started with cron expression: %s", s.config.CronExpression)
	return nil
}

// ExecuteScheduledTask runs one scan if no other replica holds the scan lock.
func (s *StockScheduler) ExecuteScheduledTask(ctx context.Context) {
	requestID := uuid.NewString()
	log.Info(msg.GetMessage("stock-alert.cron.start"), zap.String("request_id", requestID))

	run := func(ctx context.Context) error {
		low, err := s.useCase.ScanLowStock(ctx)
		if err != nil {
			return err
		}
		log.Info(msg.GetMessage("stock-alert.cron.end", len(low)), zap.String("request_id", requestID))
		return nil
	}

	var err error
	if s.redisClient == nil {
		err = run(ctx)
	} else {
		opts := redis.NewLockOptions().
			WithTTL(s.config.LockTTL).
			WithRefreshInterval(s.config.RefreshInterval).
			WithLockNamespace("schedules")
		err = redis.WithLock(ctx, s.redisClient, stockScanLockKey, opts, run)
	}

	switch {
	case errors.Is(err, redis.ErrLockNotAcquired):
		log.Info("Low stock scan skipped, another instance holds the lock", zap.String("request_id", requestID))
	case err != nil:
		log.Error(msg.GetMessage("stock-alert.error.scan-failed", err), zap.String("request_id", requestID), zap.Error(err))
	}
}

// Stop gracefully stops the scheduler
func (s *StockScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
