package http

import (
	"time"

	"go.uber.org/zap"

	"hospital-admin/pkg/log"
)

// HTTPLogger receives the lifecycle events of outgoing requests.
type HTTPLogger interface {
	LogRequest(method, url string)
	LogResponseSuccess(method, url string, httpStatus int, latency time.Duration)
	LogResponseError(method, url string, httpStatus int, latency time.Duration, err error)
	LogRequestRetry(method, url string, httpStatus int, err error, retryCount, maxRetries int)
}

// ZapLogger writes HTTP client events through pkg/log.
type ZapLogger struct {
	Client string
}

func (l ZapLogger) LogRequest(method, url string) {
	log.Debug("Outgoing request", zap.String("client", l.Client), zap.String("method", method), zap.String("url", url))
}

func (l ZapLogger) LogResponseSuccess(method, url string, httpStatus int, latency time.Duration) {
	log.Debug("Outgoing request finished",
		zap.String("client", l.Client),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency))
}

func (l ZapLogger) LogResponseError(method, url string, httpStatus int, latency time.Duration, err error) {
	log.Error("Outgoing request failed",
		zap.String("client", l.Client),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency),
		zap.Error(err))
}

func (l ZapLogger) LogRequestRetry(method, url string, httpStatus int, err error, retryCount, maxRetries int) {
	log.Warn("Retrying outgoing request",
		zap.String("client", l.Client),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int("retry", retryCount),
		zap.Int("max_retries", maxRetries),
		zap.Error(err))
}
