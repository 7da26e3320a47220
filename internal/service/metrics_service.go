package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the allocation
// engine and the HTTP surface. All recorders are nil-safe so tests can pass
// a nil service.
type MetricsService struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec

	allocationRuns     prometheus.Counter
	allocationDuration prometheus.Histogram
	assignmentsGauge   prometheus.Gauge
	conflictsGauge     prometheus.Gauge

	swapTotal *prometheus.CounterVec

	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

// NewMetricsService registers the engine's Prometheus collectors on a
// private registry.
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

	allocationRuns := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "allocation_runs_total",
		Help: "Total number of schedule regenerations",
	})

	allocationDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "allocation_run_duration_seconds",
		Help:    "Duration of schedule regenerations",
		Buckets: prometheus.DefBuckets,
	})

	assignmentsGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "allocation_assignments",
		Help: "Assignments produced by the latest regeneration",
	})

	conflictsGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "allocation_conflicts",
		Help: "Conflicts produced by the latest regeneration",
	})

	swapTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "allocation_swaps_total",
		Help: "Total number of applied manual swaps",
	}, []string{"forced"})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "summary_cache_hits_total",
		Help: "Total summary cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "summary_cache_misses_total",
		Help: "Total summary cache misses",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, allocationRuns, allocationDuration,
		assignmentsGauge, conflictsGauge, swapTotal, cacheHits, cacheMisses, goroutines)

	return &MetricsService{
		registry:           registry,
		handler:            promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:    requestDuration,
		requestTotal:       requestTotal,
		allocationRuns:     allocationRuns,
		allocationDuration: allocationDuration,
		assignmentsGauge:   assignmentsGauge,
		conflictsGauge:     conflictsGauge,
		swapTotal:          swapTotal,
		cacheHits:          cacheHits,
		cacheMisses:        cacheMisses,
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

// ObserveHTTPRequest records per-route request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveAllocationRun records the outcome of one full regeneration.
func (m *MetricsService) ObserveAllocationRun(assigned, conflicts int, duration time.Duration) {
	if m == nil {
		return
	}
	m.allocationRuns.Inc()
	m.allocationDuration.Observe(duration.Seconds())
	m.assignmentsGauge.Set(float64(assigned))
	m.conflictsGauge.Set(float64(conflicts))
}

// RecordSwap counts an applied manual swap.
func (m *MetricsService) RecordSwap(forced bool) {
	if m == nil {
		return
	}
	m.swapTotal.WithLabelValues(fmt.Sprintf("%t", forced)).Inc()
}

// RecordCacheLookup counts a summary cache hit or miss.
func (m *MetricsService) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheHits.Inc()
	} else {
		m.cacheMisses.Inc()
	}
}
