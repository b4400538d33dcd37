package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the catalog server.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	catalogLoadsTotal      prometheus.Counter
	catalogLoadErrorsTotal prometheus.Counter
	catalogRecordsServed   prometheus.Counter

	rateLimitRejected prometheus.Counter
	panicsRecovered   prometheus.Counter
}

var (
	metrics     *Metrics
	metricsOnce sync.Once
)

// GetMetrics returns the singleton metrics instance.
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = newMetrics()
	})
	return metrics
}

func newMetrics() *Metrics {
	return &Metrics{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "catalog",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by route and status",
			},
			[]string{"route", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "catalog",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds by route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		catalogLoadsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "catalog",
				Subsystem: "store",
				Name:      "loads_total",
				Help:      "Total number of catalog data loads",
			},
		),
		catalogLoadErrorsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "catalog",
				Subsystem: "store",
				Name:      "load_errors_total",
				Help:      "Total number of failed catalog data loads",
			},
		),
		catalogRecordsServed: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "catalog",
				Subsystem: "store",
				Name:      "records_served_total",
				Help:      "Total number of records returned to clients",
			},
		),
		rateLimitRejected: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "catalog",
				Subsystem: "middleware",
				Name:      "rate_limit_rejected_total",
				Help:      "Total number of requests rejected by rate limiter",
			},
		),
		panicsRecovered: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "catalog",
				Subsystem: "middleware",
				Name:      "panics_recovered_total",
				Help:      "Total number of panics recovered in handlers",
			},
		),
	}
}

// RecordRequest records a completed HTTP request.
func (m *Metrics) RecordRequest(route string, status int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordCatalogLoad records a catalog data load attempt.
func (m *Metrics) RecordCatalogLoad(err error) {
	m.catalogLoadsTotal.Inc()
	if err != nil {
		m.catalogLoadErrorsTotal.Inc()
	}
}

// RecordRecordsServed records the number of records returned to a client.
func (m *Metrics) RecordRecordsServed(n int) {
	m.catalogRecordsServed.Add(float64(n))
}

// RecordRateLimitRejected records a request rejected by the rate limiter.
func (m *Metrics) RecordRateLimitRejected() {
	m.rateLimitRejected.Inc()
}

// RecordPanicRecovered records a recovered panic.
func (m *Metrics) RecordPanicRecovered() {
	m.panicsRecovered.Inc()
}
