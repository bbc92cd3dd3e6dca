// Package metrics declares the Prometheus collectors exported by SpecMatch.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "specmatch_queries_total",
			Help: "Total number of recommendation queries by outcome",
		},
		[]string{"status"},
	)

	QueryMatches = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "specmatch_query_matches",
			Help:    "Number of catalogue entries matched per recognised query",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 25},
		},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "specmatch_http_requests_total",
			Help: "Total number of HTTP requests by method and status code",
		},
		[]string{"method", "code"},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "specmatch_http_rate_limited_total",
			Help: "Total number of HTTP requests rejected by the rate limiter",
		},
	)
)
