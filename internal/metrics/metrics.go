// Package metrics holds the Prometheus collectors of the API server.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookmarkhub",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		},
		[]string{"method", "route", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bookmarkhub",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	authFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookmarkhub",
			Subsystem: "auth",
			Name:      "failures_total",
			Help:      "Rejected passwords and tokens.",
		},
		[]string{"kind"},
	)

	uploadedBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookmarkhub",
			Subsystem: "files",
			Name:      "uploaded_bytes_total",
			Help:      "Raw bytes accepted by the upload endpoint.",
		},
	)

	uploadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookmarkhub",
			Subsystem: "files",
			Name:      "uploads_total",
			Help:      "Files stored by the upload endpoint.",
		},
	)
)

// ObserveRequest records one finished HTTP request.
func ObserveRequest(method, route string, code int, seconds float64) {
	requestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	requestDuration.WithLabelValues(method, route).Observe(seconds)
}

// AuthFailure counts a rejected login ("login") or secret ("token").
func AuthFailure(kind string) {
	authFailuresTotal.WithLabelValues(kind).Inc()
}

// Upload counts a stored file of size raw bytes.
func Upload(size int) {
	uploadsTotal.Inc()
	uploadedBytesTotal.Add(float64(size))
}
