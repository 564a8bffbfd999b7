// Package metrics provides optional Prometheus instrumentation for the SDK.
// This package is internal; applications enable it through the picsart
// package options.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the SDK's Prometheus metrics. A nil *Collector is valid
// and records nothing, so instrumented code never needs a nil check at the
// call site beyond the method receiver.
type Collector struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	pollAttemptsTotal  *prometheus.CounterVec
	pollExhaustedTotal *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "HTTP requests issued by the SDK",
			},
			[]string{"method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		pollAttemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "poll_attempts_total",
				Help:      "Status checks issued while polling long-running operations",
			},
			[]string{"action"},
		),
		pollExhaustedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "poll_exhausted_total",
				Help:      "Poll loops that ran out of repeat budget",
			},
			[]string{"action"},
		),
		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_failures_total",
				Help:      "Requests rejected by local validation",
			},
			[]string{"action"},
		),
	}
	reg.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.pollAttemptsTotal,
		c.pollExhaustedTotal,
		c.validationFailures,
	)
	return c
}

// ObserveRequest records one completed HTTP attempt.
func (c *Collector) ObserveRequest(method string, status int, d time.Duration) {
	if c == nil {
		return
	}
	c.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method).Observe(d.Seconds())
}

// PollAttempt records one status check of a poll loop.
func (c *Collector) PollAttempt(action string) {
	if c == nil {
		return
	}
	c.pollAttemptsTotal.WithLabelValues(action).Inc()
}

// PollExhausted records a poll loop that exceeded its repeat budget.
func (c *Collector) PollExhausted(action string) {
	if c == nil {
		return
	}
	c.pollExhaustedTotal.WithLabelValues(action).Inc()
}

// ValidationFailure records a request rejected before any network call.
func (c *Collector) ValidationFailure(action string) {
	if c == nil {
		return
	}
	c.validationFailures.WithLabelValues(action).Inc()
}
