package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mathsrv_http_requests_total",
			Help: "Total HTTP requests by path, method, and status.",
		},
		[]string{"path", "method", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mathsrv_http_request_duration_seconds",
			Help:    "HTTP request latency by path.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	// ToolExecutions counts tool calls by tool ID and outcome
	// ("success", "error", or a failure kind).
	ToolExecutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mathsrv_tool_executions_total",
			Help: "Tool executions by tool ID and outcome.",
		},
		[]string{"tool", "outcome"},
	)
)

// Metrics records request counts and latencies for every route.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		requestsTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}
