package service

import "github.com/prometheus/client_golang/prometheus"

var (
	checkoutOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "checkout",
			Name:      "outcomes_total",
			Help:      "Total number of checkout attempts by outcome kind",
		},
		[]string{"kind"},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "checkout_service",
			Subsystem: "checkout",
			Name:      "duration_seconds",
			Help:      "Histogram of checkout durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orphanOrders = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "checkout",
			Name:      "orphan_orders_total",
			Help:      "Total number of orders left without items after a failed compensation",
		},
	)

	cartClearFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "checkout",
			Name:      "cart_clear_failures_total",
			Help:      "Total number of committed checkouts whose cart could not be cleared inline",
		},
	)

	reconcileTasks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "reconcile",
			Name:      "tasks_enqueued_total",
			Help:      "Total number of reconcile tasks handed to the queue",
		},
		[]string{"kind", "status"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutOutcomes,
		checkoutDuration,
		orphanOrders,
		cartClearFailures,
		reconcileTasks,
	)
}
