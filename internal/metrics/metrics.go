// Package metrics contains prometheus metrics of the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder records business events of the service.
type Recorder interface {
	RecordClaimCreated()
	RecordClaimRejected(kind string)
	RecordClaimClosed(status string, count int)
	RecordSweep(released int, duration time.Duration)
	RecordSweepFailure()
	RecordEventProcessed(kind string)
	RecordNotificationFailure()
}

// Collector is a prometheus implementation of Recorder.
type Collector struct {
	claimsCreated        prometheus.Counter
	claimsRejected       *prometheus.CounterVec
	claimsClosed         *prometheus.CounterVec
	sweepReleased        prometheus.Counter
	sweepFailures        prometheus.Counter
	sweepDuration        prometheus.Histogram
	eventsProcessed      *prometheus.CounterVec
	notificationFailures prometheus.Counter
}

// NewCollector creates collector and registers its metrics in the registerer.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		claimsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reswipe_claims_created_total",
			Help: "Count of created claims",
		}),
		claimsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reswipe_claims_rejected_total",
			Help: "Count of rejected claim attempts by error kind",
		}, []string{"kind"}),
		claimsClosed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reswipe_claims_closed_total",
			Help: "Count of claims moved to a terminal status",
		}, []string{"status"}),
		sweepReleased: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reswipe_sweep_released_total",
			Help: "Count of claims released by expiry sweeps",
		}),
		sweepFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reswipe_sweep_failures_total",
			Help: "Count of failed expiry sweeps",
		}),
		sweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "reswipe_sweep_duration_seconds",
			Help:    "Duration of expiry sweeps",
			Buckets: prometheus.DefBuckets,
		}),
		eventsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reswipe_change_events_processed_total",
			Help: "Count of processed change events by kind",
		}, []string{"kind"}),
		notificationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reswipe_notification_failures_total",
			Help: "Count of notifications failed to be written",
		}),
	}

	reg.MustRegister(
		c.claimsCreated,
		c.claimsRejected,
		c.claimsClosed,
		c.sweepReleased,
		c.sweepFailures,
		c.sweepDuration,
		c.eventsProcessed,
		c.notificationFailures,
	)

	return c
}

// RecordClaimCreated ...
func (c *Collector) RecordClaimCreated() {
	c.claimsCreated.Inc()
}

// RecordClaimRejected ...
func (c *Collector) RecordClaimRejected(kind string) {
	c.claimsRejected.WithLabelValues(kind).Inc()
}

// RecordClaimClosed ...
func (c *Collector) RecordClaimClosed(status string, count int) {
	c.claimsClosed.WithLabelValues(status).Add(float64(count))
}

// RecordSweep ...
func (c *Collector) RecordSweep(released int, duration time.Duration) {
	c.sweepReleased.Add(float64(released))
	c.sweepDuration.Observe(duration.Seconds())
}

// RecordSweepFailure ...
func (c *Collector) RecordSweepFailure() {
	c.sweepFailures.Inc()
}

// RecordEventProcessed ...
func (c *Collector) RecordEventProcessed(kind string) {
	c.eventsProcessed.WithLabelValues(kind).Inc()
}

// RecordNotificationFailure ...
func (c *Collector) RecordNotificationFailure() {
	c.notificationFailures.Inc()
}

// Handler returns handler exposing metrics of the gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

type nop struct{}

// Nop returns Recorder which drops everything.
func Nop() Recorder {
	return nop{}
}

func (nop) RecordClaimCreated() {}
func (nop) RecordClaimRejected(string) {}
func (nop) RecordClaimClosed(string, int) {}
func (nop) RecordSweep(int, time.Duration) {}
func (nop) RecordSweepFailure() {}
func (nop) RecordEventProcessed(string) {}
func (nop) RecordNotificationFailure() {}
