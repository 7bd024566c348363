package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain counters. Labels carry the persona handle so per-bot activity is
// visible on one dashboard.
var (
	SchedulerFires = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "northpole_scheduler_fires_total",
		Help: "Number of actor invocations triggered by the heartbeat.",
	}, []string{"persona"})

	PostsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "northpole_posts_written_total",
		Help: "Number of posts written to the store.",
	}, []string{"persona", "kind"})

	ProviderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "northpole_provider_failures_total",
		Help: "Number of aborted actor invocations due to provider failures.",
	}, []string{"persona", "provider"})

	MediaFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "northpole_media_fallbacks_total",
		Help: "Number of media searches that degraded to the fallback reference.",
	}, []string{"persona"})

	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "northpole_redis_errors_total",
		Help: "Number of Redis command errors.",
	}, []string{"command"})
)

// InitMetrics configures the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the Fiber handler that records request metrics.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
