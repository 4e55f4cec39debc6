package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartcity_backend_requests_total",
			Help: "Requests issued to the smart-city backend",
		},
		[]string{"method", "endpoint", "outcome"},
	)

	backendLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smartcity_backend_request_duration_seconds",
			Help:    "Latency of smart-city backend requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	pageRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartcity_page_renders_total",
			Help: "Rendered console pages",
		},
		[]string{"page"},
	)
)

// Outcome labels for backend requests.
const (
	OutcomeOK        = "ok"
	OutcomeRejected  = "rejected"
	OutcomeTransport = "transport_error"
	OutcomeDecode    = "decode_error"
)

// TrackBackendCall records one backend round-trip. endpoint is the route template
// (e.g. /avis/{user}), never the concrete path, to keep label cardinality bounded.
func TrackBackendCall(method, endpoint, outcome string, d time.Duration) {
	backendRequests.WithLabelValues(method, endpoint, outcome).Inc()
	backendLatency.WithLabelValues(method, endpoint).Observe(d.Seconds())
}

func TrackPageRender(page string) {
	pageRenders.WithLabelValues(page).Inc()
}
