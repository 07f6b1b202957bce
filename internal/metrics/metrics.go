// Package metrics exposes Prometheus collectors for the HTTP API and domain events.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "api"

// Metrics bundles the collectors registered for one application label.
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	activities      *prometheus.CounterVec
	caloriesBurned  prometheus.Counter
	uploads         *prometheus.CounterVec
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// New creates a registry whose API series carry app as a const label, plus Go and process collectors.
func New(app string) *Metrics {
	labels := prometheus.Labels{"app": app}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests by method, route and status.",
			ConstLabels: labels,
		}, []string{"method", "endpoint", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_requests_duration_seconds",
			Help:        "HTTP request latency by method and route.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		activities: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "activity",
			Name:        "events_total",
			Help:        "Activities created, updated and deleted, labeled by operation.",
			ConstLabels: labels,
		}, []string{"operation"}),
		caloriesBurned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "activity",
			Name:        "calories_logged_total",
			Help:        "Sum of calories burned across newly logged activities.",
			ConstLabels: labels,
		}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "file",
			Name:        "uploads_total",
			Help:        "File uploads labeled by result.",
			ConstLabels: labels,
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.activities,
		m.caloriesBurned,
		m.uploads,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Default returns the process-wide Metrics, created on first use with app.
func Default(app string) *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = New(app)
	})
	return defaultMetrics
}

// Middleware records request count and latency keyed by the matched route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		method := c.Request.Method

		m.requestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordActivity counts an activity operation ("created", "updated", "deleted").
func (m *Metrics) RecordActivity(operation string, calories int) {
	if m == nil {
		return
	}
	m.activities.WithLabelValues(operation).Inc()
	if operation == "created" && calories > 0 {
		m.caloriesBurned.Add(float64(calories))
	}
}

// RecordUpload counts an upload attempt by result ("stored", "rejected", "failed").
func (m *Metrics) RecordUpload(result string) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(result).Inc()
}
