// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// Metrics is registered once per registerer; tests pass a fresh
// prometheus.NewRegistry().
type Metrics struct {
	bookingTransitions *prometheus.CounterVec
	notifications      *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		bookingTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_transitions_total",
				Help:      "Committed booking transitions by event kind.",
			},
			[]string{"kind"},
		),
		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Notification deliveries by channel and result.",
			},
			[]string{"channel", "result"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status code.",
			},
			[]string{"method", "route", "status"},
		),
	}
}

func (m *Metrics) IncBookingTransition(kind string) {
	m.bookingTransitions.WithLabelValues(kind).Inc()
}

// IncNotification counts one delivery attempt. channel is "store" or
// "publish"; result is "ok" or "error".
func (m *Metrics) IncNotification(channel, result string) {
	m.notifications.WithLabelValues(channel, result).Inc()
}

func (m *Metrics) IncHTTPRequest(method, route, status string) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
}
