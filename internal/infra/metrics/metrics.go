// Package metrics owns the Prometheus registry and the collectors recorded by the API and the sync worker.
package metrics

import (
	"net/http"
	"time"

	"atelier/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "atelier"

// NewRegistry creates a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// Handler exposes the registry in the Prometheus text format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

// HTTPMetrics records request counts and latencies.
type HTTPMetrics struct {
	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP collectors.
func NewHTTPMetrics(registry *prometheus.Registry) *HTTPMetrics {
	m := &HTTPMetrics{
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
	}
	registry.MustRegister(m.inFlight, m.requests, m.duration)

	return m
}

// Begin marks a request as in flight and returns the function that completes it.
func (m *HTTPMetrics) Begin() func(method, route, status string, duration time.Duration) {
	m.inFlight.Inc()

	return func(method, route, status string, duration time.Duration) {
		m.inFlight.Dec()
		m.requests.WithLabelValues(method, route, status).Inc()
		m.duration.WithLabelValues(method, route).Observe(duration.Seconds())
	}
}

type reconcileMetrics struct {
	runs        *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	corrections *prometheus.CounterVec
}

// NewReconcileMetrics registers the reconciliation collectors.
func NewReconcileMetrics(registry *prometheus.Registry) service.ReconcileMetrics {
	m := &reconcileMetrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconcile",
			Name:      "runs_total",
			Help:      "Reconciliation runs by trigger and outcome.",
		}, []string{"trigger", "success"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reconcile",
			Name:      "run_duration_seconds",
			Help:      "Duration of reconciliation runs.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"trigger"}),
		corrections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconcile",
			Name:      "corrections_total",
			Help:      "NFT projections changed by reconciliation.",
		}, []string{"trigger"}),
	}
	registry.MustRegister(m.runs, m.duration, m.corrections)

	return m
}

func (m *reconcileMetrics) ObserveRun(trigger string, err error, duration time.Duration) {
	success := "true"
	if err != nil {
		success = "false"
	}
	m.runs.WithLabelValues(trigger, success).Inc()
	m.duration.WithLabelValues(trigger).Observe(duration.Seconds())
}

func (m *reconcileMetrics) AddCorrections(trigger string, n int) {
	if n <= 0 {
		return
	}
	m.corrections.WithLabelValues(trigger).Add(float64(n))
}
