package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus represents the health status
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// HealthReport represents the health check response for Redis
type HealthReport struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthCheck pings Redis within timeout and reports pool statistics.
func HealthCheck(ctx context.Context, client *Client, timeout time.Duration) HealthReport {
	if client == nil {
		return HealthReport{
			Status:  StatusUnknown,
			Details: map[string]string{"message": "redis client not configured"},
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	err := client.Ping(pingCtx)
	latency := time.Since(started)

	details := map[string]string{
		"host":     client.config.Host,
		"port":     strconv.Itoa(client.config.Port),
		"database": strconv.Itoa(client.config.Database),
		"latency":  latency.String(),
	}
	if stats := client.Stats(); stats != nil {
		details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
		details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	}

	if err != nil {
		details["message"] = err.Error()
		return HealthReport{Status: StatusDown, Details: details}
	}

	details["message"] = string(StatusUp)
	return HealthReport{Status: StatusUp, Details: details}
}
