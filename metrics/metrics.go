package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecordsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_records_created_total",
			Help: "Total number of records persisted",
		},
		[]string{"kind"}, // kind: review, booking
	)

	RecordsDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_records_deleted_total",
			Help: "Total number of records deleted by an admin",
		},
		[]string{"kind"},
	)

	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_notifications_total",
			Help: "Submission notification outcomes",
		},
		[]string{"kind", "outcome"}, // outcome: sent, skipped, failed
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)
)

const (
	OutcomeSent    = "sent"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

func IncrementCreated(kind string) {
	RecordsCreated.WithLabelValues(kind).Inc()
}

func IncrementDeleted(kind string) {
	RecordsDeleted.WithLabelValues(kind).Inc()
}

func IncrementNotification(kind, outcome string) {
	Notifications.WithLabelValues(kind, outcome).Inc()
}

// Middleware records request latency labelled by the matched route pattern,
// so /api/reviews/7 and /api/reviews/8 share a series.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		HTTPRequestDuration.
			WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
		return err
	}
}
