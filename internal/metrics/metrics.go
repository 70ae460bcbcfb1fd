// Package metrics содержит метрики Prometheus сервиса.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// httpRequestDuration измеряет длительность HTTP-запросов
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// httpRequestsTotal подсчитывает HTTP-запросы
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// passesSubmittedTotal подсчитывает сохранённые перевалы
	passesSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pereval_submitted_total",
			Help: "Total number of stored pass submissions",
		},
	)

	// cacheOperationsTotal подсчитывает обращения к кешу
	cacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)
)

// RecordHTTPRequest записывает метрики обработанного запроса.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	httpRequestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
	httpRequestsTotal.WithLabelValues(method, route, code).Inc()
}

// RecordSubmission увеличивает счётчик сохранённых перевалов.
func RecordSubmission() {
	passesSubmittedTotal.Inc()
}

// RecordCacheOperation записывает результат обращения к кешу: hit, miss или error.
func RecordCacheOperation(operation, result string) {
	cacheOperationsTotal.WithLabelValues(operation, result).Inc()
}
