package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"hospital-admin/configs"
	_ "hospital-admin/docs"
	"hospital-admin/internal/application/controller"
	"hospital-admin/internal/application/middleware"
	"hospital-admin/internal/application/processor"
	"hospital-admin/internal/application/schedule"
	"hospital-admin/internal/domain/cachekey"
	apigateway "hospital-admin/internal/domain/gateway/api"
	"hospital-admin/internal/domain/gateway/cache"
	"hospital-admin/internal/domain/gateway/queue"
	"hospital-admin/internal/domain/navigation"
	"hospital-admin/internal/domain/usecase/health"
	"hospital-admin/internal/domain/usecase/stockalert"
	"hospital-admin/internal/domain/usecase/ticket"
	"hospital-admin/internal/infra/aws"
	infracache "hospital-admin/internal/infra/cache"
	"hospital-admin/pkg/http"
	"hospital-admin/pkg/log"
	"hospital-admin/pkg/msg"
	"hospital-admin/pkg/resource"
	"hospital-admin/pkg/sqs"
)

func main() {
	if err := resource.Init(configs.Env.PropertiesFile); err != nil {
		log.Fatal("Failed to load properties", zap.Error(err))
	}
	if err := msg.Init(configs.Env.MessagesFile); err != nil {
		log.Fatal("Failed to load messages", zap.Error(err))
	}
	log.SetLevel(resource.GetStringOrDefault("app.log.level", "info"))
	defer log.Sync()

	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	api := e.Group(resource.GetStringOrDefault("app.server.context-path", "/api/v1"))

	redisClient, err := infracache.NewRedisClient()
	if err != nil {
		log.Fatal("Failed to create redis client", zap.Error(err))
	}
	defer redisClient.Close()
	slidingKeys, err := referenceKeys()
	if err != nil {
		log.Fatal("Invalid app.reference-warmup.resources", zap.Error(err))
	}
	queryCache := cache.NewRedisQueryCache(redisClient,
		resource.GetDurationOrDefault("app.redis.health-timeout", 2*time.Second),
		slidingKeys...)

	httpClient := newBackendClient()

	awsConfig, err := aws.LoadConfig(ctx)
	if err != nil {
		log.Fatal("Failed to load AWS config", zap.Error(err))
	}
	sqsClient := aws.NewSqsClient(awsConfig)

	// Init resources
	deps := &resourceDeps{
		api:        api,
		httpClient: httpClient,
		queryCache: queryCache,
		defaults: controller.ListDefaults{
			PerPage:    resource.GetIntOrDefault("app.pagination.default-per-page", 15),
			MaxPerPage: resource.GetIntOrDefault("app.pagination.max-per-page", 100),
		},
		warmers: make(map[string]schedule.Warmer),
	}
	stockGateway := registerResources(deps)

	// Init UseCase
	queueName := resource.GetString("app.queue-ticket.queue-name")
	renderer, err := newTicketRenderer()
	if err != nil {
		log.Fatal("Failed to create ticket renderer", zap.Error(err))
	}
	ticketUseCase := ticket.NewTicketUseCase(queueName, renderer, aws.NewSQSSenderAdapter(sqsClient))
	stockAlertUseCase := stockalert.NewStockAlertUseCase(resource.GetIntOrDefault("app.stock-alert.per-page", 50), stockGateway)

	queueHealthGateway := queue.NewQueueHealthGateway()
	backendHealthGateway := apigateway.NewBackendHealthGateway(
		httpClient,
		resource.GetStringOrDefault("app.backend.health-path", "/health"),
		resource.GetDurationOrDefault("app.backend.health-timeout", 3*time.Second))
	healthUseCase := health.NewHealthUseCase(queryCache, backendHealthGateway, queueHealthGateway)

	// Init Controller
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewNavigationController(api, navigation.DefaultMenu()).InitNavigationRoutes()
	controller.NewPaginationController(api).InitPaginationRoutes()
	controller.NewQueueTicketController(api, ticketUseCase).InitQueueTicketRoutes()

	// Init Worker
	startTicketWorker(ctx, sqsClient, queueName, ticketUseCase, queueHealthGateway)

	// Init Schedule
	stockScheduler := schedule.NewStockScheduler(stockAlertUseCase, redisClient, schedule.StockSchedulerConfig{
		CronExpression:  resource.GetStringOrDefault("app.stock-alert.cron", "*/30 * * * *"),
		LockTTL:         resource.GetDurationOrDefault("app.stock-alert.lock-ttl", 10*time.Minute),
		RefreshInterval: resource.GetDurationOrDefault("app.stock-alert.refresh-interval", time.Minute),
	})
	if err := stockScheduler.InitStockScheduleTasks(ctx); err != nil {
		log.Fatal("Failed to start low stock scheduler", zap.Error(err))
	}
	defer stockScheduler.Stop()

	referenceScheduler, err := schedule.NewReferenceScheduler(
		resource.GetDurationOrDefault("app.reference-warmup.interval", 10*time.Minute),
		resource.GetIntOrDefault("app.reference-warmup.per-page", 15),
		referenceWarmers(deps.warmers, slidingKeys))
	if err != nil {
		log.Fatal("Failed to create reference scheduler", zap.Error(err))
	}
	if err := referenceScheduler.InitReferenceScheduleTasks(ctx); err != nil {
		log.Fatal("Failed to start reference scheduler", zap.Error(err))
	}
	defer referenceScheduler.Stop()

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", "8080")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down server", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stop"))
}

func newBackendClient() *http.Client {
	headers := map[string]string{"Accept": "application/json"}
	if token := resource.GetString("app.backend.token"); token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	return http.NewHttpClient(resource.GetString("app.backend.base-url"), http.ClientOptions{
		DefaultHeaders:    headers,
		ConnectionTimeout: resource.GetDurationOrDefault("app.backend.connection-timeout", 5*time.Second),
		ReadTimeout:       resource.GetDurationOrDefault("app.backend.read-timeout", 30*time.Second),
		Backoff: http.NewBackoffConfig(
			resource.GetIntOrDefault("app.backend.retry.max-retries", 2),
			resource.GetDurationOrDefault("app.backend.retry.initial-delay", 200*time.Millisecond),
			resource.GetDurationOrDefault("app.backend.retry.max-delay", 2*time.Second)),
		Logger: http.ZapLogger{Client: "backend"},
	})
}

func newTicketRenderer() (*ticket.Renderer, error) {
	var text string
	if path := resource.GetString("app.queue-ticket.template-file"); path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		text = string(content)
	}
	return ticket.NewRenderer(text,
		resource.GetString("app.queue-ticket.hospital-name"),
		resource.GetString("app.queue-ticket.footer"),
		resource.GetString("app.queue-ticket.time-zone"))
}

// startTicketWorker consumes print jobs in the background. Without a reachable queue the
// service still starts and the health endpoint reports the queue as UNKNOWN.
func startTicketWorker(ctx context.Context, client sqs.WorkerAPI, queueName string, ticketUseCase ticket.UseCase, healthGateway *queue.QueueHealthGateway) {
	printer, err := processor.NewSpoolPrinter(resource.GetString("app.queue-ticket.spool-dir"))
	if err != nil {
		log.Error("Ticket printer unavailable", zap.Error(err))
		return
	}

	worker, err := sqs.NewWorker(ctx, client, queueName, processor.NewTicketProcessor(ticketUseCase, printer), &sqs.WorkerConfig{
		PoolSize: resource.GetIntOrDefault("app.queue-ticket.worker-pool-size", 2),
	})
	if err != nil {
		log.Warn("Ticket worker not started", zap.String("queue", queueName), zap.Error(err))
		return
	}

	healthGateway.RegisterWorker("ticket_printer", worker)
	go worker.Start(ctx)
}

// referenceKeys lists the rarely changing resources that are warmed periodically and
// whose list entries slide their TTL on every hit.
func referenceKeys() ([]cachekey.Key, error) {
	var keys []cachekey.Key
	for _, name := range strings.Split(resource.GetString("app.reference-warmup.resources"), ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key, err := cachekey.Parse(name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func referenceWarmers(all map[string]schedule.Warmer, keys []cachekey.Key) map[string]schedule.Warmer {
	warmers := make(map[string]schedule.Warmer, len(keys))
	for _, key := range keys {
		if warmer, ok := all[string(key)]; ok {
			warmers[string(key)] = warmer
		}
	}
	return warmers
}
