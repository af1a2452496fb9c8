package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	gatewayRequests *prometheus.CounterVec
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	skipped         *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	lastPrice       *prometheus.GaugeVec
	latency         *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		gatewayRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finadvisor_gateway_requests_total",
				Help: "Total number of market data gateway requests",
			},
			[]string{"endpoint", "outcome"},
		),
		cacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finadvisor_cache_hits_total",
				Help: "Total number of instrument cache hits",
			},
			[]string{"kind"},
		),
		cacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finadvisor_cache_misses_total",
				Help: "Total number of instrument cache misses or expirations",
			},
			[]string{"kind"},
		),
		skipped: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finadvisor_instruments_skipped_total",
				Help: "Total number of instruments skipped as unavailable",
			},
			[]string{"reason"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finadvisor_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "finadvisor_last_price",
				Help: "Last observed price for a symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finadvisor_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordGatewayRequest records one upstream gateway request and its outcome.
func (r *Recorder) RecordGatewayRequest(endpoint, outcome string) {
	r.gatewayRequests.WithLabelValues(endpoint, outcome).Inc()
}

// RecordCacheHit records a snapshot served from cache.
func (r *Recorder) RecordCacheHit(kind string) {
	r.cacheHits.WithLabelValues(kind).Inc()
}

// RecordCacheMiss records a refresh triggered by a missing or stale entry.
func (r *Recorder) RecordCacheMiss(kind string) {
	r.cacheMisses.WithLabelValues(kind).Inc()
}

// RecordSkipped records an instrument dropped as unavailable.
func (r *Recorder) RecordSkipped(reason string) {
	r.skipped.WithLabelValues(reason).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastPrice records the last price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
