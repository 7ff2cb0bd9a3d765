package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the analyze endpoint.
type metrics struct {
	analyzeRequests *prometheus.CounterVec
	analyzeDuration prometheus.Histogram
	ratings         prometheus.Histogram
}

func newMetrics() *metrics {
	return &metrics{
		analyzeRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "postscore_analyze_requests_total",
			Help: "Total analyze requests by outcome.",
		}, []string{"status"}),
		analyzeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "postscore_analyze_duration_seconds",
			Help:    "Time spent scoring a post, external call included.",
			Buckets: prometheus.DefBuckets,
		}),
		ratings: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "postscore_rating",
			Help:    "Distribution of final ratings.",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
	}
}
