// Package metrics holds the Prometheus collectors of the blog server.
//
// Collectors are registered on a private registry instead of the global one
// so that tests can build independent instances.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "blog"

// Outcome labels of the access counter collector.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics is the set of collectors updated by the HTTP layer.
type Metrics struct {
	registry *prometheus.Registry

	requests         *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	counterIncrement *prometheus.CounterVec
	authRejections   prometheus.Counter
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests by method and response status.",
		}, []string{"method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		counterIncrement: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_counter_increments_total",
			Help:      "Access counter increments by result.",
		}, []string{"result"}),
		authRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_rejections_total",
			Help:      "Requests to protected paths rejected for missing or invalid credentials.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.counterIncrement,
		m.authRejections,
	)

	return m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(method string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// CounterIncremented records the outcome of an access counter increment.
func (m *Metrics) CounterIncremented(err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.counterIncrement.WithLabelValues(result).Inc()
}

// AuthRejected records a request refused by the auth interceptor.
func (m *Metrics) AuthRejected() {
	m.authRejections.Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	// Response compression belongs to the gzip interceptor.
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry:           m.registry,
		DisableCompression: true,
	})
}
