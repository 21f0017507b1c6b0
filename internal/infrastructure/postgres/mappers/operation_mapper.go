package mappers

import (
	"github.com/alma-platform/alma-operations-service/internal/domain"
	"github.com/alma-platform/alma-operations-service/internal/infrastructure/postgres/models"
)

func ToDomainOperation(model *models.OperationModel) *domain.Operation {
	operation := &domain.Operation{
		ID:               model.ID,
		Code:             model.Code,
		ClientID:         model.ClientID,
		PickupAddress:    model.PickupAddress,
		AmountUSD:        model.AmountUSD,
		CommissionRate:   model.CommissionRate,
		CommissionAmount: model.CommissionAmount,
		FXCommission:     model.FXCommission,
		NetAmount:        model.NetAmount,
		EstimatedUSDT:    model.EstimatedUSDT,
		ActualUSDT:       model.ActualUSDT,
		USDTWallet:       model.USDTWallet,
		Status:           model.Status,
		CollectorID:      model.CollectorID,
		FXProvider:       model.FXProvider,
		Priority:         domain.Priority(model.Priority),
		CreatedAt:        model.CreatedAt,
		Deadline:         model.Deadline,
		CompletedAt:      model.CompletedAt,
		Notes:            model.Notes,
	}

	if model.Client.ID != "" {
		operation.Client = ToDomainClient(&model.Client)
	}
	if model.Collector != nil {
		operation.Collector = ToDomainUser(model.Collector)
	}

	return operation
}

func ToGORMOperation(operation *domain.Operation) *models.OperationModel {
	return &models.OperationModel{
		ID:               operation.ID,
		Code:             operation.Code,
		ClientID:         operation.ClientID,
		PickupAddress:    operation.PickupAddress,
		AmountUSD:        operation.AmountUSD,
		CommissionRate:   operation.CommissionRate,
		CommissionAmount: operation.CommissionAmount,
		FXCommission:     operation.FXCommission,
		NetAmount:        operation.NetAmount,
		EstimatedUSDT:    operation.EstimatedUSDT,
		ActualUSDT:       operation.ActualUSDT,
		USDTWallet:       operation.USDTWallet,
		Status:           operation.Status,
		CollectorID:      operation.CollectorID,
		FXProvider:       operation.FXProvider,
		Priority:         string(operation.Priority),
		CreatedAt:        operation.CreatedAt,
		Deadline:         operation.Deadline,
		CompletedAt:      operation.CompletedAt,
		Notes:            operation.Notes,
	}
}

func ToDomainOperationLog(model *models.OperationLogModel) *domain.OperationLog {
	return &domain.OperationLog{
		ID:          model.ID,
		OperationID: model.OperationID,
		UserID:      model.UserID,
		Action:      model.Action,
		Details:     model.Details,
		Timestamp:   model.Timestamp,
	}
}

func ToGORMOperationLog(entry *domain.OperationLog) *models.OperationLogModel {
	return &models.OperationLogModel{
		ID:          entry.ID,
		OperationID: entry.OperationID,
		UserID:      entry.UserID,
		Action:      entry.Action,
		Details:     entry.Details,
		Timestamp:   entry.Timestamp,
	}
}
