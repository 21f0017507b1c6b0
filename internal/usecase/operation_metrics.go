package usecase

import "github.com/alma-platform/alma-operations-service/internal/domain"

func (uc *DefaultOperationUsecase) recordCreated(operation *domain.Operation) {
	if uc.Metrics == nil {
		return
	}
	labels := []string{string(operation.Priority)}
	uc.Metrics.OperationsCreatedTotal.WithLabelValues(labels...).Inc()
	uc.Metrics.OperationsCreatedAmountTotal.WithLabelValues(labels...).Add(operation.AmountUSD.InexactFloat64())
	uc.Metrics.OperationStatusGauge.WithLabelValues(string(domain.StatusPending)).Inc()
}

func (uc *DefaultOperationUsecase) recordStatusChange(operation *domain.Operation) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OperationStatusGauge.WithLabelValues(string(operation.Status)).Inc()

	if operation.Status == domain.StatusCompleted {
		uc.Metrics.OperationsCompletedTotal.WithLabelValues(string(operation.Priority)).Inc()
		uc.Metrics.OperationsCompletedAmountTotal.WithLabelValues(string(operation.Priority)).Add(operation.AmountUSD.InexactFloat64())
		if operation.CompletedAt != nil {
			uc.Metrics.OperationProcessingDuration.WithLabelValues(string(operation.Priority)).
				Observe(operation.CompletedAt.Sub(operation.CreatedAt).Seconds())
		}
	}
}

func (uc *DefaultOperationUsecase) recordCancelled(operation *domain.Operation) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OperationsCancelledTotal.WithLabelValues(string(operation.Priority)).Inc()
	uc.Metrics.OperationStatusGauge.WithLabelValues(string(domain.StatusCancelled)).Inc()
}

func (uc *DefaultOperationUsecase) recordError(operation string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
}
