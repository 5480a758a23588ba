package discovery

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ExternalQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_external_queries_total",
			Help: "Count of external event API queries by category and outcome.",
		},
		[]string{"category", "outcome"},
	)

	FallbackQueriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "discovery_fallback_queries_total",
			Help: "How many searches had to fall back to the generic keyword query.",
		},
	)
)

func init() {
	prometheus.MustRegister(ExternalQueriesTotal, FallbackQueriesTotal)
}
