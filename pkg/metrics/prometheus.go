package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "smartnotes"

// Recorder exports completion pipeline and HTTP metrics. A nil *Recorder is a no-op.
type Recorder struct {
	registry *prometheus.Registry

	attempts        *prometheus.CounterVec
	attemptDuration *prometheus.HistogramVec
	results         *prometheus.CounterVec
	tokens          *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// NewRecorder registers all collectors on a fresh registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Recorder{registry: registry}
	r.attempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "completion",
		Name:      "attempts_total",
		Help:      "Completion attempts by operation and outcome.",
	}, []string{"operation", "outcome"})
	r.attemptDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "completion",
		Name:      "attempt_duration_seconds",
		Help:      "Wall-clock duration of a single bounded completion attempt.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 12, 16},
	}, []string{"operation"})
	r.results = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "completion",
		Name:      "results_total",
		Help:      "Terminal pipeline results by operation, outcome and attempts used.",
	}, []string{"operation", "outcome", "attempts"})
	r.tokens = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "completion",
		Name:      "tokens_total",
		Help:      "Estimated tokens exchanged with the completion provider.",
	}, []string{"operation", "kind"})
	r.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	r.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	registry.MustRegister(r.attempts, r.attemptDuration, r.results, r.tokens, r.httpRequests, r.httpDuration)
	return r
}

// ObserveAttempt records one bounded invocation.
func (r *Recorder) ObserveAttempt(operation, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.attempts.WithLabelValues(operation, outcome).Inc()
	r.attemptDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveResult records the terminal outcome of a pipeline call.
func (r *Recorder) ObserveResult(operation, outcome string, attempts int) {
	if r == nil {
		return
	}
	r.results.WithLabelValues(operation, outcome, strconv.Itoa(attempts)).Inc()
}

// ObserveUsage adds estimated token usage.
func (r *Recorder) ObserveUsage(operation string, usage TokenUsage) {
	if r == nil || usage.IsZero() {
		return
	}
	r.tokens.WithLabelValues(operation, "prompt").Add(float64(usage.PromptTokens))
	r.tokens.WithLabelValues(operation, "completion").Add(float64(usage.CompletionTokens))
}

// ObserveHTTP records a served request.
func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}
