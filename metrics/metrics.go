// Package metrics exposes Prometheus instrumentation for the tracking
// server on a dedicated registry.
package metrics

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	ReportsReceived prometheus.Counter
	ReportsRejected prometheus.Counter

	Arrivals         prometheus.Counter
	Skips            prometheus.Counter
	DriftCorrections prometheus.Counter
	RouteCompletions prometheus.Counter
	TrackedBuses     prometheus.Gauge

	ConnectedClients prometheus.Gauge
	BroadcastSent    prometheus.Counter
	BroadcastDropped prometheus.Counter

	NATSPublished   prometheus.Counter
	NATSPublishErrs prometheus.Counter
	NATSConnected   prometheus.Gauge

	ProcessDuration prometheus.Histogram
	PublishDuration prometheus.Histogram
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		ReportsReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bustracker_reports_received_total",
			Help: "Total position reports accepted by the ingress.",
		}),
		ReportsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bustracker_reports_rejected_total",
			Help: "Total position reports rejected as malformed.",
		}),
		Arrivals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bustracker_stop_arrivals_total",
			Help: "Total stop arrivals detected.",
		}),
		Skips: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bustracker_stop_skips_total",
			Help: "Total stops advanced past without an arrival fix.",
		}),
		DriftCorrections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bustracker_drift_corrections_total",
			Help: "Total next-stop pointer corrections after off-track positions.",
		}),
		RouteCompletions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bustracker_route_completions_total",
			Help: "Total end-of-route rollovers back to the first stop.",
		}),
		TrackedBuses: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bustracker_tracked_buses",
			Help: "Number of buses with a live progress record.",
		}),
		ConnectedClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bustracker_connected_clients",
			Help: "Number of websocket subscribers currently connected.",
		}),
		BroadcastSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bustracker_broadcast_sent_total",
			Help: "Total messages delivered to subscriber channels.",
		}),
		BroadcastDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bustracker_broadcast_dropped_total",
			Help: "Total messages dropped for slow subscribers.",
		}),
		NATSPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bustracker_nats_published_total",
			Help: "Total NATS messages published.",
		}),
		NATSPublishErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bustracker_nats_publish_errors_total",
			Help: "Total NATS publish errors.",
		}),
		NATSConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bustracker_nats_connected",
			Help: "1 if NATS connection is established, 0 otherwise.",
		}),
		ProcessDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bustracker_process_duration_seconds",
			Help:    "Duration of per-report tracker processing.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 15),
		}),
		PublishDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bustracker_publish_duration_seconds",
			Help:    "Duration to marshal and publish a NATS message.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15),
		}),
	}

	reg.MustRegister(
		c.ReportsReceived, c.ReportsRejected,
		c.Arrivals, c.Skips, c.DriftCorrections, c.RouteCompletions, c.TrackedBuses,
		c.ConnectedClients, c.BroadcastSent, c.BroadcastDropped,
		c.NATSPublished, c.NATSPublishErrs, c.NATSConnected,
		c.ProcessDuration, c.PublishDuration,
	)

	return c
}

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }

// Serve starts an HTTP server exposing /metrics on the given address.
func (c *Collector) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server error: %v", err)
		}
	}()
	log.Printf("metrics listening on %s", addr)
	return srv
}
