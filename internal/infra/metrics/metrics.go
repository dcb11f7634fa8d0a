package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Metrics struct {
	Registry *prometheus.Registry

	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec
	HttpErrorsTotal     *prometheus.CounterVec

	OutboxEventsTotal         *prometheus.CounterVec
	OutboxPublishFailureTotal *prometheus.CounterVec
}

// New registers every collector on a fresh registry so that tests can build
// as many servers as they like.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HttpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests received",
			},
			[]string{"endpoint", "status", "method"},
		),
		HttpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint", "method"},
		),
		HttpErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_errors_total",
				Help: "Total number of failed HTTP requests (4xx/5xx)",
			},
			[]string{"endpoint", "status", "method"},
		),
		OutboxEventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "outbox_events_total",
				Help: "Outbox events handled by the relay, by final status",
			},
			[]string{"event", "status"},
		),
		OutboxPublishFailureTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "outbox_publish_failure_total",
				Help: "Outbox events the broker refused",
			},
			[]string{"event"},
		),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HttpRequestsTotal,
		m.HttpRequestDuration,
		m.HttpErrorsTotal,
		m.OutboxEventsTotal,
		m.OutboxPublishFailureTotal,
	)
	return m
}
