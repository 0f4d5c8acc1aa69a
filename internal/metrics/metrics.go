// Package metrics exposes Prometheus instrumentation for the HTTP
// surface and the index build.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the collectors behind a private registry so tests
// can create as many instances as they like without duplicate
// registration panics.
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec

	BuildDuration prometheus.Gauge
	HotelsLoaded  prometheus.Gauge
	SearchesTotal prometheus.Counter
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hotelhunt_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hotelhunt_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		BuildDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hotelhunt_index_build_duration_seconds",
			Help: "Wall time of the last index build.",
		}),
		HotelsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hotelhunt_hotels_loaded",
			Help: "Hotels loaded from the corpus.",
		}),
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hotelhunt_keyword_searches_total",
			Help: "Keyword searches served.",
		}),
	}

	m.registry.MustRegister(m.requests, m.latency, m.BuildDuration, m.HotelsLoaded, m.SearchesTotal)
	return m
}

// Handler serves the scrape endpoint for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per route. The route
// template (not the raw path) is used as the label to keep cardinality
// bounded.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.latency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
