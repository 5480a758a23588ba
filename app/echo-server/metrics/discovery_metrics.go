package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	DiscoverPageSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "discovery_page_size_items",
		Help:    "Number of items on each served discovery page",
		Buckets: []float64{0, 5, 10, 20, 50, 100},
	})
)

func Init() {
	prometheus.MustRegister(DiscoverPageSize)
}
