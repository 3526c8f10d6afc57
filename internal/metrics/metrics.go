package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ArrivalsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_arrivals_created_total",
			Help: "Total number of arrival documents committed",
		},
	)

	TransfersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_transfers_created_total",
			Help: "Total number of transfer documents committed",
		},
	)

	AuditEventsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_events_recorded_total",
			Help: "Total number of audit events appended, by action",
		},
		[]string{"action"},
	)
)
