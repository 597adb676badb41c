// Package metrics Prometheus 指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipelineboard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pipelineboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	BoardBuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pipelineboard_board_builds_total",
			Help: "Total number of progress board recomputations",
		},
	)

	GoalEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pipelineboard_goal_entries",
			Help: "Number of goal entries currently held",
		},
	)

	ViewMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipelineboard_view_messages_total",
			Help: "Total number of dispatched view messages",
		},
		[]string{"type"},
	)

	ImportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipelineboard_imports_total",
			Help: "Total number of dataset imports",
		},
		[]string{"status"},
	)
)
