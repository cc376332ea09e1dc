package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/IlikeChooros/go-dynsolve/pkg/games/shutthebox"
)

// Prometheus collectors of the server, kept on a private registry
type Metrics struct {
	registry      *prometheus.Registry
	requests      *prometheus.CounterVec
	solveDuration prometheus.Histogram
	graphStates   prometheus.Histogram
	solveErrors   prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dynsolve_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		solveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dynsolve_solve_duration_seconds",
			Help:    "Time spent building and resolving a dependency graph",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
		graphStates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dynsolve_graph_states",
			Help:    "Number of states in a resolved dependency graph",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		solveErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dynsolve_solve_errors_total",
			Help: "Analyses that failed to resolve every state",
		}),
	}

	m.registry.MustRegister(m.requests, m.solveDuration, m.graphStates, m.solveErrors)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Analyst observer, see shutthebox.WithObserver
func (m *Metrics) ObserveSolve(r shutthebox.Report) {
	m.solveDuration.Observe(r.Duration.Seconds())
	m.graphStates.Observe(float64(r.Stats.States))
	if r.Err != nil {
		m.solveErrors.Inc()
	}
}

func (m *Metrics) observeRequest(route, method string, status int) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}
