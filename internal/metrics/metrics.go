package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// RequestsTotal counts handled HTTP requests by method, route and
	// response status.
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agenda",
		Name:      "http_requests_total",
		Help:      "Handled HTTP requests.",
	}, []string{"method", "path", "status"})

	// RequestDuration observes request handling time per route.
	RequestDuration = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: "agenda",
		Name:      "http_request_duration_seconds",
		Help:      "Request handling duration in seconds.",
	}, []string{"method", "path"})

	// EventsPurged counts events dropped by the expiry purge.
	EventsPurged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "agenda",
		Name:      "events_purged_total",
		Help:      "Events removed because their date has passed.",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration, EventsPurged)
}
