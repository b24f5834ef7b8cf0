package ioweb

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts API requests by route and HTTP status.
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gntaxa",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of API requests",
	}, []string{"route", "status"})

	// requestDuration measures time of API requests by route.
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gntaxa",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "API request latency in seconds",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"route"})

	taxaLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "gntaxa",
		Subsystem: "taxonomy",
		Name:      "nodes",
		Help:      "Number of taxa in the served taxonomy",
	})

	reloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gntaxa",
		Subsystem: "taxonomy",
		Name:      "reloads_total",
		Help:      "Number of taxonomy reloads by result",
	}, []string{"result"})
)

// metricsMiddleware records count and latency of requests. Unmatched
// routes are grouped under "unknown".
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())
		requestsTotal.WithLabelValues(route, status).Inc()
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
