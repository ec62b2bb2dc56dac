// Package metrics provides Prometheus metrics for the diashow server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diashow_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "diashow_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	selectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diashow_selections_total",
			Help: "Image selections by collection, operation and outcome",
		},
		[]string{"collection", "operation", "outcome"},
	)

	analysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "diashow_image_analysis_duration_seconds",
			Help:    "Time spent decoding an image for its info document",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
		},
	)
)

// Outcome labels for RecordSelection.
const (
	OutcomeOK         = "ok"
	OutcomeNotFound   = "not_found"
	OutcomeBadRequest = "bad_request"
	OutcomeError      = "error"
)

// RecordSelection counts one random, next or prev selection.
func RecordSelection(collection, operation, outcome string) {
	selectionsTotal.WithLabelValues(collection, operation, outcome).Inc()
}

// ObserveAnalysis records the duration of one image analysis.
func ObserveAnalysis(d time.Duration) {
	analysisDuration.Observe(d.Seconds())
}

// Handler returns the Prometheus exposition handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Gin returns middleware recording request counts and durations. Requests
// are labelled with their route pattern to keep cardinality bounded.
func Gin() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
