package api

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

// Solve outcomes recorded on dynprog_solves_total.
const (
	outcomeOK      = "ok"
	outcomeInvalid = "invalid"
)

// metrics is owned by one Server. Each Server registers into its own
// registry, so several servers (or tests) can coexist in one process.
type metrics struct {
	reg *prometheus.Registry

	requests *prometheus.CounterVec   // route, method, status
	latency  *prometheus.HistogramVec // route
	solves   *prometheus.CounterVec   // algorithm, outcome
	cells    *prometheus.HistogramVec // algorithm; DP table size of accepted solves
}

func newMetrics() *metrics {
	m := &metrics{
		reg: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dynprog_http_requests_total",
			Help: "HTTP requests served, by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dynprog_http_request_duration_seconds",
			Help:    "Wall time spent serving a request, by route pattern.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"route"}),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dynprog_solves_total",
			Help: "Solver calls by algorithm and outcome (ok, invalid).",
		}, []string{"algorithm", "outcome"}),
		cells: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dynprog_table_cells",
			Help:    "Cells in the DP table of each accepted solve.",
			Buckets: prometheus.ExponentialBuckets(16, 16, 6),
		}, []string{"algorithm"}),
	}
	m.reg.MustRegister(
		m.requests, m.latency, m.solves, m.cells,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// solved records an accepted solve of the given table size.
func (m *metrics) solved(algorithm string, cells int) {
	m.solves.WithLabelValues(algorithm, outcomeOK).Inc()
	m.cells.WithLabelValues(algorithm).Observe(float64(cells))
}

// rejected records a solve refused with 400.
func (m *metrics) rejected(algorithm string) {
	m.solves.WithLabelValues(algorithm, outcomeInvalid).Inc()
}

// handler serves this registry only, not the process-global default.
func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// middleware counts and times requests under their chi route pattern, so
// label cardinality stays bounded by the route table.
func (m *metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.latency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
