package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the discovery search HTTP handler
	DiscoverySearchLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "discovery_search_latency_seconds",
		Help:    "Latency of discovery search handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of discovery pages served
	DiscoverySearchRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "discovery_search_requests_total",
		Help: "Total number of discovery search requests",
	})
)

func Init() {
	prometheus.MustRegister(
		DiscoverySearchLatency,
		DiscoverySearchRequests,
	)
}
