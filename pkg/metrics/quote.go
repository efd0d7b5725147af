package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records cart quote computations.
type QuoteMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewQuoteMetrics registers the quote metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cart_quote_duration_seconds",
		Help:    "Duration of cart quote computations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"fulfillment"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_quote_success",
		Help: "Successful cart quote computations.",
	}, []string{"fulfillment"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_quote_failure",
		Help: "Failed cart quote computations.",
	}, []string{"fulfillment"})
	reg.MustRegister(duration, success, failure)
	return &QuoteMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the given fulfillment method.
func (q *QuoteMetrics) ObserveDuration(fulfillment string, duration time.Duration) {
	if q == nil || q.duration == nil {
		return
	}
	q.duration.WithLabelValues(normalizeLabel(fulfillment)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the given fulfillment method.
func (q *QuoteMetrics) IncSuccess(fulfillment string) {
	if q == nil || q.success == nil {
		return
	}
	q.success.WithLabelValues(normalizeLabel(fulfillment)).Inc()
}

// IncFailure increments the failure counter for the given fulfillment method.
func (q *QuoteMetrics) IncFailure(fulfillment string) {
	if q == nil || q.failure == nil {
		return
	}
	q.failure.WithLabelValues(normalizeLabel(fulfillment)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
