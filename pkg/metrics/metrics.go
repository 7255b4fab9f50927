package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	UpstreamTotal   *prometheus.CounterVec
	DroppedRecords  prometheus.Counter
}

func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Number of handled HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		UpstreamTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Number of calls to the scheduling provider.",
			ConstLabels: labels,
		}, []string{"outcome"}),

		DroppedRecords: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_dropped_records_total",
			Help:        "Raw booking records dropped for data-quality errors.",
			ConstLabels: labels,
		}),
	}
}
