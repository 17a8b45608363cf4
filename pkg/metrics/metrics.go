package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP (BFF)
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// API do Buff
	BuffAPICalls    *prometheus.CounterVec
	BuffAPIDuration *prometheus.HistogramVec
	BuffAPIFailures *prometheus.CounterVec

	// Respostas descartadas por estarem desatualizadas
	StaleResponses *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),

		BuffAPICalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buff_api_calls_total",
				Help: "Total number of calls to the Buff REST API",
			},
			[]string{"operation", "status"},
		),

		BuffAPIDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "buff_api_call_duration_seconds",
				Help:    "Buff REST API call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		BuffAPIFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buff_api_failures_total",
				Help: "Total number of failed calls to the Buff REST API",
			},
			[]string{"operation", "reason"},
		),

		StaleResponses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "buff_stale_responses_total",
				Help: "Responses discarded because a newer request superseded them",
			},
			[]string{"component"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, statusCode string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

func (m *Metrics) RecordAPICall(operation, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.BuffAPICalls.WithLabelValues(operation, status).Inc()
	m.BuffAPIDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *Metrics) RecordAPIFailure(operation, reason string) {
	if m == nil {
		return
	}
	m.BuffAPIFailures.WithLabelValues(operation, reason).Inc()
}

func (m *Metrics) RecordStaleResponse(component string) {
	if m == nil {
		return
	}
	m.StaleResponses.WithLabelValues(component).Inc()
}
