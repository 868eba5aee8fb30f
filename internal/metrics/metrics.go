// Package metrics provides Prometheus metric collection for the activities API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface handlers use to record domain-level outcomes.
type Recorder interface {
	RecordSignup(result string)
	RecordUnregister(result string)
}

// Result labels for signup/unregister counters.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultConflict = "conflict"
	ResultError    = "error"
)

// Collector registers and records all Prometheus metrics for the server.
type Collector struct {
	requests    *prometheus.CounterVec
	latency     prometheus.Histogram
	signups     *prometheus.CounterVec
	unregisters *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activities_http_requests_total",
			Help: "HTTP requests handled, by method, route pattern, and status code.",
		}, []string{"method", "path", "status"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "activities_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activities_signup_total",
			Help: "Signup attempts, by result.",
		}, []string{"result"}),
		unregisters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activities_unregister_total",
			Help: "Unregister attempts, by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(c.requests, c.latency, c.signups, c.unregisters)
	return c
}

// RecordSignup counts one signup attempt with the given result label.
func (c *Collector) RecordSignup(result string) {
	c.signups.WithLabelValues(result).Inc()
}

// RecordUnregister counts one unregister attempt with the given result label.
func (c *Collector) RecordUnregister(result string) {
	c.unregisters.WithLabelValues(result).Inc()
}

// Middleware returns an HTTP middleware that records a request counter and
// latency observation for every request. The path label uses the chi route
// pattern (e.g. /activities/{activityName}/signup) rather than the raw URL,
// keeping label cardinality bounded.
func (c *Collector) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}

			c.requests.WithLabelValues(r.Method, path, strconv.Itoa(ww.Status())).Inc()
			c.latency.Observe(time.Since(start).Seconds())
		})
	}
}

// Handler returns the /metrics endpoint for the given registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
