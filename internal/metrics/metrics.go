// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the surface the rest of the service depends on.
type Recorder interface {
	RecordUpstreamRequest(endpoint string, statusCode int)
	RecordUpstreamLatency(endpoint string, duration time.Duration)
	RecordTokenRefresh(success bool)
	RecordHTTPStatus(statusCode int)
	RecordFavoriteEvent(published bool)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	tokenRefresh     *prometheus.CounterVec
	httpStatus       *prometheus.CounterVec
	favoriteEvents   *prometheus.CounterVec
}

// NewCollector registers the collectors on reg and returns the instance.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gamelib_upstream_requests_total",
			Help: "Catalog upstream requests by endpoint and status code.",
		}, []string{"endpoint", "status_code"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gamelib_upstream_latency_seconds",
			Help:    "Catalog upstream request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		tokenRefresh: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gamelib_token_refresh_total",
			Help: "Catalog credential refresh attempts by outcome.",
		}, []string{"outcome"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gamelib_http_status_total",
			Help: "Served HTTP responses by status code.",
		}, []string{"status_code"}),
		favoriteEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gamelib_favorite_events_total",
			Help: "Favorite events by publish outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		c.upstreamRequests,
		c.upstreamLatency,
		c.tokenRefresh,
		c.httpStatus,
		c.favoriteEvents,
	)
	return c
}

func (c *Collector) RecordUpstreamRequest(endpoint string, statusCode int) {
	c.upstreamRequests.WithLabelValues(endpoint, strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordUpstreamLatency(endpoint string, duration time.Duration) {
	c.upstreamLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (c *Collector) RecordTokenRefresh(success bool) {
	c.tokenRefresh.WithLabelValues(outcome(success)).Inc()
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordFavoriteEvent(published bool) {
	c.favoriteEvents.WithLabelValues(outcome(published)).Inc()
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

// Handler returns the Prometheus scrape handler.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop is a Recorder that discards everything. Used in tests.
type Nop struct{}

func (Nop) RecordUpstreamRequest(string, int)            {}
func (Nop) RecordUpstreamLatency(string, time.Duration)  {}
func (Nop) RecordTokenRefresh(bool)                      {}
func (Nop) RecordHTTPStatus(int)                         {}
func (Nop) RecordFavoriteEvent(bool)                     {}
