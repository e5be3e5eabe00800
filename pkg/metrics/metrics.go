package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service
type Metrics struct {
	RequestsTotal     *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	WizardTransitions *prometheus.CounterVec
	BookingsConfirmed prometheus.Counter
}

// New creates and registers all collectors under the service namespace
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests by method, path and status",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by method and path",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		WizardTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "wizard_transitions_total",
			Help:        "Total wizard state transitions by action and outcome",
			ConstLabels: constLabels,
		}, []string{"action", "outcome"}),

		BookingsConfirmed: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_confirmed_total",
			Help:        "Total appointment bookings confirmed",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveRequest records a completed HTTP request
func (m *Metrics) ObserveRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveTransition records a wizard transition attempt
func (m *Metrics) ObserveTransition(action, outcome string) {
	m.WizardTransitions.WithLabelValues(action, outcome).Inc()
}

// ObserveBookingConfirmed records a confirmed appointment booking
func (m *Metrics) ObserveBookingConfirmed() {
	m.BookingsConfirmed.Inc()
}
