package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	tasksProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "reconcile_consumer",
			Name:      "tasks_processed_total",
			Help:      "Total number of successfully applied reconcile tasks",
		},
	)

	tasksFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "reconcile_consumer",
			Name:      "tasks_failed_total",
			Help:      "Total number of reconcile tasks that failed after retries",
		},
	)

	tasksDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "reconcile_consumer",
			Name:      "tasks_dlq_total",
			Help:      "Total number of reconcile tasks written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "reconcile_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	taskProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "checkout_service",
			Subsystem: "reconcile_consumer",
			Name:      "task_processing_duration_seconds",
			Help:      "Histogram of reconcile task processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	tasksInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "checkout_service",
			Subsystem: "reconcile_consumer",
			Name:      "tasks_in_progress",
			Help:      "Number of reconcile tasks currently being processed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		tasksProcessed,
		tasksFailed,
		tasksDLQ,
		commitErrors,
		taskProcessingDuration,
		tasksInProgress,
	)
}
