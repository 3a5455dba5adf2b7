// Package observability holds the Prometheus collectors for the HTTP
// surface and the domain events worth counting. Collectors register at
// package init and are recorded from the middleware and handlers.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pawlog",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by method, route template, and status code.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pawlog",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by method and route template.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	activitiesLogged = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pawlog",
		Subsystem: "activities",
		Name:      "logged_total",
		Help:      "Activities logged successfully, by type.",
	}, []string{"type"})

	chatExchanges = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pawlog",
		Subsystem: "chat",
		Name:      "exchanges_total",
		Help:      "Chat message pairs exchanged successfully.",
	})

	remindersShown = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pawlog",
		Subsystem: "reminders",
		Name:      "shown_total",
		Help:      "Walk reminders evaluated to visible.",
	})
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		activitiesLogged,
		chatExchanges,
		remindersShown,
	)
}

// ObserveHTTPRequest records one served request
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordActivityLogged counts one successfully logged activity
func RecordActivityLogged(activityType string) {
	activitiesLogged.WithLabelValues(activityType).Inc()
}

// RecordChatExchange counts one successful user/ai exchange
func RecordChatExchange() {
	chatExchanges.Inc()
}

// RecordReminderShown counts one reminder evaluation that fired
func RecordReminderShown() {
	remindersShown.Inc()
}
