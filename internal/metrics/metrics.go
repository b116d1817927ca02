// Package metrics provides Prometheus metrics collection for the nutrition service.
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

	// TextAnalysesTotal tracks total meal text analyses.
	TextAnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text_analyses_total",
			Help: "Total number of meal text analyses",
		},
		[]string{"status"},
	)

	// TextAnalysisDuration tracks end-to-end analysis duration.
	TextAnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "text_analysis_duration_seconds",
			Help:    "Meal text analysis duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
	)

	// ExtractedItemsPerAnalysis tracks how many food items each analysis yields.
	ExtractedItemsPerAnalysis = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "extracted_items_per_analysis",
			Help:    "Number of food items extracted per analysis",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
	)

	// NutrientResolutionsTotal tracks nutrient resolutions by backend and outcome.
	NutrientResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrient_resolutions_total",
			Help: "Total number of nutrient resolutions",
		},
		[]string{"source", "status"},
	)

	// NutrientResolutionDuration tracks single-item resolution duration.
	NutrientResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nutrient_resolution_duration_seconds",
			Help:    "Nutrient resolution duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
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

// RecordTextAnalysis records metrics for one meal text analysis.
func RecordTextAnalysis(duration time.Duration, status string, itemCount int) {
	TextAnalysisDuration.Observe(duration.Seconds())
	TextAnalysesTotal.WithLabelValues(status).Inc()
	ExtractedItemsPerAnalysis.Observe(float64(itemCount))
}

// RecordNutrientResolution records metrics for one nutrient resolution.
func RecordNutrientResolution(duration time.Duration, source, status string) {
	NutrientResolutionDuration.Observe(duration.Seconds())
	NutrientResolutionsTotal.WithLabelValues(source, status).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
