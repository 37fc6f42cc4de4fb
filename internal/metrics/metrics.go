package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds the prometheus collectors for the service.
type MetricsRegistry struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	RegistrationsTotal *prometheus.CounterVec
	ReportExportsTotal prometheus.Counter
}

// NewMetricsRegistry registers all collectors on the default registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by route and method",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		HTTPRequestsInFlight: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "In-flight HTTP requests by route",
			},
			[]string{"route"},
		),
		RegistrationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "event_registrations_total",
				Help: "Registration ledger writes by result",
			},
			[]string{"result"},
		),
		ReportExportsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "report_exports_total",
				Help: "Workbook exports served",
			},
		),
	}
}
