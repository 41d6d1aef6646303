package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dgymbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dgymbook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	EntitiesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dgymbook_entities_created_total",
			Help: "Total number of entities created, by entity kind",
		},
		[]string{"entity"},
	)

	EntitiesDeletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dgymbook_entities_deleted_total",
			Help: "Total number of entities deleted, by entity kind",
		},
		[]string{"entity"},
	)

	MembershipsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dgymbook_memberships_created_total",
			Help: "Total number of memberships created",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordEntityCreated(entity string) {
	EntitiesCreatedTotal.WithLabelValues(entity).Inc()
}

func RecordEntityDeleted(entity string) {
	EntitiesDeletedTotal.WithLabelValues(entity).Inc()
}

func RecordMembershipCreated() {
	MembershipsCreatedTotal.Inc()
	RecordEntityCreated("membership")
}
