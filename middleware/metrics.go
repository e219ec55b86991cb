package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	requestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	registerMetricsOnce sync.Once
)

// HTTPMetrics records a request counter and duration histogram for every
// routed request. Paths are recorded as route patterns, not raw URLs, to
// keep label cardinality bounded.
func HTTPMetrics() fiber.Handler {
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(requestCounter)
		prometheus.MustRegister(requestDurationHistogram)
	})

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		path := c.Route().Path
		method := c.Method()
		statusStr := strconv.Itoa(status)

		requestCounter.WithLabelValues(method, path, statusStr).Inc()
		requestDurationHistogram.WithLabelValues(method, path, statusStr).Observe(time.Since(start).Seconds())

		return err
	}
}

// MetricsHandler exposes the prometheus scrape endpoint.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
