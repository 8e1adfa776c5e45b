// Package metrics exposes relay activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"bootwatcher/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records relay metrics into a Prometheus registry.
type Collector struct {
	subscriptions     prometheus.Counter
	deliveries        *prometheus.CounterVec
	dispatches        *prometheus.CounterVec
	dispatchLatency   prometheus.Histogram
	lookups           *prometheus.CounterVec
	storeReadFailures *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		subscriptions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bootwatcher_subscriptions_total",
			Help: "Subscriptions recorded",
		}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bootwatcher_sms_deliveries_total",
			Help: "SMS sends by outcome",
		}, []string{"outcome"}),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bootwatcher_dispatches_total",
			Help: "Dispatch requests by final state",
		}, []string{"state"}),
		dispatchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bootwatcher_dispatch_duration_seconds",
			Help:    "Time to fan out one dispatch",
			Buckets: prometheus.DefBuckets,
		}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bootwatcher_places_lookups_total",
			Help: "Nearby parking lookups by status",
		}, []string{"status"}),
		storeReadFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bootwatcher_store_read_failures_total",
			Help: "Store reads that degraded to an empty result",
		}, []string{"operation"}),
	}

	reg.MustRegister(
		c.subscriptions,
		c.deliveries,
		c.dispatches,
		c.dispatchLatency,
		c.lookups,
		c.storeReadFailures,
	)

	return c
}

func (c *Collector) RecordSubscription(lotName string) {
	c.subscriptions.Inc()
}

func (c *Collector) RecordDelivery(outcome entity.DeliveryOutcome) {
	label := "accepted"
	if !outcome.Accepted() {
		label = "failed"
	}
	c.deliveries.WithLabelValues(label).Inc()
}

func (c *Collector) RecordDispatch(state entity.DispatchState, duration time.Duration) {
	c.dispatches.WithLabelValues(string(state)).Inc()
	c.dispatchLatency.Observe(duration.Seconds())
}

func (c *Collector) RecordLookup(status entity.LookupStatus) {
	c.lookups.WithLabelValues(string(status)).Inc()
}

func (c *Collector) RecordStoreReadFailure(operation string) {
	c.storeReadFailures.WithLabelValues(operation).Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
