// Package obs exposes Prometheus metrics for the HTTP surface and for
// remote synchronization outcomes.
package obs

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered by Register.
type Metrics struct {
	inFlight *prometheus.GaugeVec
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	syncs    *prometheus.CounterVec
	gatherer prometheus.Gatherer
}

// New creates collectors and registers them with reg.
// Passing nil uses a fresh registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		inFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chartboard_http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}, []string{"method"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chartboard_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chartboard_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		syncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chartboard_remote_sync_total",
			Help: "Remote BI synchronization attempts by operation and outcome.",
		}, []string{"operation", "outcome"}),
		gatherer: reg,
	}

	reg.MustRegister(m.inFlight, m.requests, m.duration, m.syncs)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveSync counts one remote synchronization attempt.
// outcome is "synced", "skipped" or "failed".
func (m *Metrics) ObserveSync(operation, outcome string) {
	m.syncs.WithLabelValues(operation, outcome).Inc()
}

// Instrument wraps next and records request count, latency and in-flight gauge.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := CanonicalPath(r.URL.Path)
		method := r.Method

		m.inFlight.WithLabelValues(method).Inc()
		defer m.inFlight.WithLabelValues(method).Dec()

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		status := strconv.Itoa(sw.code)
		m.duration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(method, path, status).Inc()
	})
}

// CanonicalPath replaces identifier segments with ":id" to keep label
// cardinality bounded.
func CanonicalPath(p string) string {
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}

	segs := strings.Split(p, "/")
	for i, s := range segs {
		if isIdentifier(s) {
			segs[i] = ":id"
		}
	}
	return strings.Join(segs, "/")
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	if _, err := uuid.Parse(s); err == nil {
		return true
	}
	if _, err := strconv.Atoi(s); err == nil {
		return true
	}
	return len(s) == 26 && strings.ToUpper(s) == s && !strings.ContainsAny(s, "-_")
}

type statusWriter struct {
	http.ResponseWriter
	code        int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.code = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
