package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OperationMetrics holds every Prometheus collector for the operation
// pipeline.
type OperationMetrics struct {
	OperationsCreatedTotal       prometheus.CounterVec
	OperationsCreatedAmountTotal prometheus.CounterVec

	OperationsCompletedTotal       prometheus.CounterVec
	OperationsCompletedAmountTotal prometheus.CounterVec

	OperationsCancelledTotal prometheus.CounterVec

	// Running counter of transitions into each status.
	OperationStatusGauge prometheus.GaugeVec

	// Seconds from creation to completion.
	OperationProcessingDuration prometheus.HistogramVec

	OperationErrorsTotal prometheus.CounterVec
}

func NewOperationMetrics() *OperationMetrics {
	return &OperationMetrics{
		OperationsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alma_operations_created_total",
				Help: "Total number of operations created",
			},
			[]string{"priority"},
		),

		OperationsCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alma_operations_created_amount_total",
				Help: "Total gross USD amount of created operations",
			},
			[]string{"priority"},
		),

		OperationsCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alma_operations_completed_total",
				Help: "Total number of completed operations",
			},
			[]string{"priority"},
		),

		OperationsCompletedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alma_operations_completed_amount_total",
				Help: "Total gross USD amount of completed operations",
			},
			[]string{"priority"},
		),

		OperationsCancelledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alma_operations_cancelled_total",
				Help: "Total number of cancelled operations",
			},
			[]string{"priority"},
		),

		OperationStatusGauge: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "alma_operation_status_transitions",
				Help: "Transitions into each operation status",
			},
			[]string{"status"},
		),

		OperationProcessingDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "alma_operation_processing_duration_seconds",
				Help:    "Time from operation creation to completion",
				Buckets: prometheus.ExponentialBuckets(60, 2, 12), // 1m .. ~3d
			},
			[]string{"priority"},
		),

		OperationErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alma_operation_errors_total",
				Help: "Store failures by operation kind",
			},
			[]string{"operation"},
		),
	}
}
