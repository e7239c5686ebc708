// Package metrics provides Prometheus metrics collection for the
// replenishment service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CalculationsTotal tracks replenishment calculations by outcome.
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replenishment_calculations_total",
			Help: "Total number of replenishment calculations",
		},
		[]string{"status"},
	)

	// CalculationDuration tracks replenishment calculation duration.
	CalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "replenishment_calculation_duration_seconds",
			Help:    "Replenishment calculation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// TruckPlansTotal tracks truck completion plans by outcome.
	TruckPlansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "truck_plans_total",
			Help: "Total number of truck completion plans",
		},
		[]string{"status"},
	)

	// DatasetUploadsTotal tracks dataset uploads by dataset type and outcome.
	DatasetUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_uploads_total",
			Help: "Total number of dataset uploads",
		},
		[]string{"dataset", "status"},
	)

	// DatasetRowsRetained tracks the row count of the latest upload per dataset type.
	DatasetRowsRetained = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_rows_retained",
			Help: "Rows retained by the most recent upload of each dataset type",
		},
		[]string{"dataset"},
	)
)

// Outcome labels for domain counters.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCalculation records metrics for a replenishment calculation.
func RecordCalculation(duration time.Duration, status string) {
	CalculationDuration.Observe(duration.Seconds())
	CalculationsTotal.WithLabelValues(status).Inc()
}

// RecordTruckPlan records metrics for a truck completion plan.
func RecordTruckPlan(status string) {
	TruckPlansTotal.WithLabelValues(status).Inc()
}

// RecordUpload records metrics for a dataset upload.
func RecordUpload(dataset, status string, rowsRetained int) {
	DatasetUploadsTotal.WithLabelValues(dataset, status).Inc()
	if status == StatusSuccess {
		DatasetRowsRetained.WithLabelValues(dataset).Set(float64(rowsRetained))
	}
}
