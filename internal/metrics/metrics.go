// Package metrics exposes slider and HTTP counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"loyalty-rewards/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "loyalty"

// Recorder implements ports.ConfirmationRecorder on its own registry.
type Recorder struct {
	registry   *prometheus.Registry
	gestures   *prometheus.CounterVec
	rejections *prometheus.CounterVec
	debits     *prometheus.CounterVec
	requests   *prometheus.CounterVec
	durations  *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		gestures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "slider",
			Name:      "gestures_total",
			Help:      "Slider releases by outcome.",
		}, []string{"outcome"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "slider",
			Name:      "rejections_total",
			Help:      "Confirmations refused during validation, by error code.",
		}, []string{"code"}),
		debits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "debits_total",
			Help:      "Debits applied to a balance bucket.",
		}, []string{"bucket"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests served.",
		}, []string{"route", "method", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	r.registry.MustRegister(r.gestures, r.rejections, r.debits, r.requests, r.durations)
	return r
}

func (r *Recorder) Released(outcome domain.ReleaseOutcome) {
	r.gestures.WithLabelValues(string(outcome)).Inc()
}

func (r *Recorder) Rejected(code string) {
	r.rejections.WithLabelValues(code).Inc()
}

func (r *Recorder) Debited(bucket domain.BucketKind) {
	r.debits.WithLabelValues(string(bucket)).Inc()
}

// Middleware counts requests per matched route.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		r.durations.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry is exposed for tests and for callers that add their own collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
