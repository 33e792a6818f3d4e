// Package metrics contains the gin middleware and the domain counters exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var totalRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by route and status.",
	},
	[]string{"method", "path", "status"},
)

var duration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

var availabilityChecks = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "availability_checks_total",
		Help: "Availability checks by result (available or the unavailability reason).",
	},
	[]string{"result"},
)

var bookings = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bookings_total",
		Help: "Booking attempts by outcome.",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(totalRequests, duration, availabilityChecks, bookings)
}

// GinMiddleware records request count and latency per route template.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		duration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		totalRequests.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// AvailabilityChecked counts one availability check. An empty reason means available.
func AvailabilityChecked(reason string) {
	if reason == "" {
		reason = "available"
	}
	availabilityChecks.WithLabelValues(reason).Inc()
}

// BookingAttempted counts one booking by outcome ("created" or an error code).
func BookingAttempted(outcome string) {
	bookings.WithLabelValues(outcome).Inc()
}
