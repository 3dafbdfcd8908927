// Package metrics exposes the service's Prometheus instrumentation: decision
// counters broken down by status, decision latency, and request-level HTTP
// counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "product_judge_decisions_total",
		Help: "Total number of decisions produced, by status",
	}, []string{"status"})

	decisionLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "product_judge_decision_latency_seconds",
		Help:    "Decision core latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	decisionProductCount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "product_judge_decision_product_count",
		Help:    "Number of product units returned per decision",
		Buckets: []float64{0, 1, 2, 3, 4, 5, 8, 10},
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "product_judge_http_requests_total",
		Help: "Total number of HTTP requests, by route and status code",
	}, []string{"route", "code"})

	httpRequestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "product_judge_http_request_latency_seconds",
		Help:    "HTTP request latency in seconds, by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

// RecordDecision records one completed decision's status, latency, and unit
// count.
func RecordDecision(status string, seconds float64, productCount int) {
	decisionsTotal.WithLabelValues(status).Inc()
	decisionLatency.Observe(seconds)
	decisionProductCount.Observe(float64(productCount))
}

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(route, code string, seconds float64) {
	httpRequestsTotal.WithLabelValues(route, code).Inc()
	httpRequestLatency.WithLabelValues(route).Observe(seconds)
}
