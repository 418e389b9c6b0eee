package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricAuthEvent           = "authentication_event"
	MetricExternalCallFailed  = "external_call_failed"
	MetricExternalCall        = "external_call"
	MetricPriceCacheLookup    = "price_cache_lookup"
	MetricValuationRun        = "valuation_run"
	MetricValuationDuration   = "valuation_duration"
	MetricAccountsUpdated     = "valuation_accounts_updated"
	MetricCircuitBreakerState = "circuit_breaker_state"
	MetricPostCreated         = "post_created"
	MetricPostLike            = "post_like"
	MetricPanicRecovered      = "http_panic_recovered"
	MetricAPIError            = "api_error"
)

type PrometheusMetrics struct {
	authenticationEventsTotal *prometheus.CounterVec
	externalCallFailures      *prometheus.CounterVec
	externalCallDuration      *prometheus.HistogramVec
	priceCacheLookups         *prometheus.CounterVec
	valuationRuns             *prometheus.CounterVec
	valuationDuration         prometheus.Histogram
	accountsUpdated           prometheus.Gauge
	circuitBreakerState       *prometheus.GaugeVec
	postsCreated              prometheus.Counter
	postLikes                 *prometheus.CounterVec
	panicsRecovered           *prometheus.CounterVec
	apiErrors                 *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors on reg. A nil reg builds unregistered collectors.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of wallet authentication events",
			},
			[]string{"event_type"},
		),
		externalCallFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "external_call_failures_total",
				Help: "Total number of failed calls to external data providers",
			},
			[]string{"collaborator"},
		),
		externalCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "external_call_duration_milliseconds",
				Help:    "Duration of calls to external data providers in milliseconds",
				Buckets: prometheus.ExponentialBuckets(5, 2, 12),
			},
			[]string{"collaborator"},
		),
		priceCacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "price_cache_lookups_total",
				Help: "Token price cache lookups by result",
			},
			[]string{"result"},
		),
		valuationRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_valuation_runs_total",
				Help: "Total number of portfolio valuation runs by status",
			},
			[]string{"status"},
		),
		valuationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "portfolio_valuation_duration_seconds",
				Help:    "Portfolio valuation run duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			},
		),
		accountsUpdated: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "portfolio_valuation_accounts_updated",
				Help: "Accounts whose portfolio value was written by the last run",
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		postsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "posts_created_total",
				Help: "Total number of posts created",
			},
		),
		postLikes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "post_likes_total",
				Help: "Total number of like toggles by resulting state",
			},
			[]string{"action"},
		),
		panicsRecovered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_panics_recovered_total",
				Help: "Handler panics turned into 500 responses, by route",
			},
			[]string{"route"},
		),
		apiErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Error responses rendered by the central handler, by code, route and status",
			},
			[]string{"code", "route", "status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricAuthEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	case MetricExternalCallFailed:
		if collaborator := tags["collaborator"]; collaborator != "" {
			m.externalCallFailures.WithLabelValues(collaborator).Inc()
		}
	case MetricPriceCacheLookup:
		if result := tags["result"]; result != "" {
			m.priceCacheLookups.WithLabelValues(result).Inc()
		}
	case MetricValuationRun:
		if status := tags["status"]; status != "" {
			m.valuationRuns.WithLabelValues(status).Inc()
		}
	case MetricPostCreated:
		m.postsCreated.Inc()
	case MetricPostLike:
		if action := tags["action"]; action != "" {
			m.postLikes.WithLabelValues(action).Inc()
		}
	case MetricPanicRecovered:
		m.panicsRecovered.WithLabelValues(tags["route"]).Inc()
	case MetricAPIError:
		m.apiErrors.WithLabelValues(tags["code"], tags["route"], tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricValuationDuration:
		m.valuationDuration.Observe(duration.Seconds())
	case MetricExternalCall + ".balances":
		m.externalCallDuration.WithLabelValues("balances").Observe(float64(duration.Milliseconds()))
	case MetricExternalCall + ".prices":
		m.externalCallDuration.WithLabelValues("prices").Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricAccountsUpdated:
		m.accountsUpdated.Set(value)
	case MetricCircuitBreakerState:
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}
