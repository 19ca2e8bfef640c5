package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// SnapshotWritesTotal записи снимков коллекций, result = ok|error
	SnapshotWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restaurant_snapshot_writes_total",
			Help: "Collection snapshot writes to the durable store.",
		},
		[]string{"collection", "result"},
	)

	// SnapshotLoadsTotal чтения снимков при старте, result = loaded|missing|corrupt|error
	SnapshotLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restaurant_snapshot_loads_total",
			Help: "Collection snapshot reads during store initialization.",
		},
		[]string{"collection", "result"},
	)

	LanguageSwitchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restaurant_language_switches_total",
			Help: "Active display language changes.",
		},
		[]string{"language"},
	)
)
