package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for inbound portal requests,
// outbound backend calls and discarded stale responses.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	apiDuration     *prometheus.HistogramVec
	apiTotal        *prometheus.CounterVec
	staleTotal      *prometheus.CounterVec

	requestCount         uint64
	requestDurationTotal uint64
	apiCount             uint64
	apiFailureCount      uint64
	apiDurationTotal     uint64
	staleCount           uint64
}

// MetricsSnapshot is a lightweight summary for the JSON metrics endpoint.
type MetricsSnapshot struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	APIRequestsTotal         uint64    `json:"api_requests_total"`
	APIFailuresTotal         uint64    `json:"api_failures_total"`
	AverageAPIDurationMs     float64   `json:"average_api_duration_ms"`
	StaleResponsesTotal      uint64    `json:"stale_responses_total"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	apiDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "backend_request_duration_seconds",
		Help:    "Duration of requests sent to the college backend",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "resource", "status"})

	apiTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "backend_requests_total",
		Help: "Total number of requests sent to the college backend",
	}, []string{"method", "resource", "status"})

	staleTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stale_responses_total",
		Help: "Responses discarded because a newer load superseded them",
	}, []string{"loader"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, apiDuration, apiTotal, staleTotal, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		apiDuration:     apiDuration,
		apiTotal:        apiTotal,
		staleTotal:      staleTotal,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Registry returns the underlying registry.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTPRequest records inbound portal request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// ObserveAPIRequest records one backend round trip. Status 0 means no response.
func (m *MetricsService) ObserveAPIRequest(method, resource string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.apiDuration.WithLabelValues(method, resource, labelStatus).Observe(duration.Seconds())
	m.apiTotal.WithLabelValues(method, resource, labelStatus).Inc()
	atomic.AddUint64(&m.apiCount, 1)
	atomic.AddUint64(&m.apiDurationTotal, uint64(duration.Nanoseconds()))
	if status == 0 || status >= http.StatusBadRequest {
		atomic.AddUint64(&m.apiFailureCount, 1)
	}
}

// ObserveStale counts a discarded out-of-order response.
func (m *MetricsService) ObserveStale(loader string) {
	if m == nil {
		return
	}
	m.staleTotal.WithLabelValues(loader).Inc()
	atomic.AddUint64(&m.staleCount, 1)
}

// Snapshot returns aggregated metrics.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)
	apiCount := atomic.LoadUint64(&m.apiCount)
	apiDuration := atomic.LoadUint64(&m.apiDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	var avgAPIMs float64
	if apiCount > 0 {
		avgAPIMs = float64(apiDuration) / float64(apiCount) / float64(time.Millisecond)
	}

	return MetricsSnapshot{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		APIRequestsTotal:         apiCount,
		APIFailuresTotal:         atomic.LoadUint64(&m.apiFailureCount),
		AverageAPIDurationMs:     avgAPIMs,
		StaleResponsesTotal:      atomic.LoadUint64(&m.staleCount),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
