package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "textrank"

// Metrics holds the Prometheus collectors of one server. Each Metrics owns
// its registry, so several servers can live in one process.
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	vertices    prometheus.Histogram
	iterations  prometheus.Histogram
	unconverged prometheus.Counter
	inputBytes  prometheus.Histogram
}

// NewMetrics registers the HTTP and extraction collectors plus the Go
// runtime and process collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		vertices: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_vertices",
			Help:      "Vertices in the co-occurrence graph of one request.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rank_iterations",
			Help:      "Power iterations run per request.",
			Buckets:   prometheus.LinearBuckets(5, 10, 10),
		}),
		unconverged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rank_unconverged_total",
			Help:      "Rankings that stopped at the iteration cap.",
		}),
		inputBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "input_bytes",
			Help:      "Size of submitted text in bytes.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		}),
	}
	m.registry.MustRegister(
		m.requests, m.duration,
		m.vertices, m.iterations, m.unconverged, m.inputBytes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// observe records one ranking.
func (m *Metrics) observe(textBytes, vertices, iterations int, converged bool) {
	m.inputBytes.Observe(float64(textBytes))
	m.vertices.Observe(float64(vertices))
	m.iterations.Observe(float64(iterations))
	if !converged {
		m.unconverged.Inc()
	}
}

// middleware counts requests by chi route pattern.
func (m *Metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
