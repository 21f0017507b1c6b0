package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alma-platform/alma-operations-service/internal/domain"
)

type OperationResponse struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	ClientID      string `json:"client_id"`
	ClientName    string `json:"client_name,omitempty"`
	PickupAddress string `json:"pickup_address"`

	AmountUSD        decimal.Decimal  `json:"amount_usd"`
	CommissionRate   decimal.Decimal  `json:"commission_rate"`
	CommissionAmount decimal.Decimal  `json:"commission_amount"`
	FXCommission     decimal.Decimal  `json:"fx_commission"`
	NetAmount        decimal.Decimal  `json:"net_amount"`
	EstimatedUSDT    decimal.Decimal  `json:"estimated_usdt"`
	ActualUSDT       *decimal.Decimal `json:"actual_usdt,omitempty"`

	USDTWallet    string     `json:"usdt_wallet"`
	Status        string     `json:"status"`
	CollectorID   *string    `json:"collector_id,omitempty"`
	CollectorName string     `json:"collector_name,omitempty"`
	FXProvider    string     `json:"fx_provider,omitempty"`
	Priority      string     `json:"priority"`
	CreatedAt     time.Time  `json:"created_at"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

func FromDomainOperation(operation *domain.Operation) OperationResponse {
	return OperationResponse{
		ID:               operation.ID,
		Code:             operation.Code,
		ClientID:         operation.ClientID,
		ClientName:       operation.ClientName(),
		PickupAddress:    operation.PickupAddress,
		AmountUSD:        operation.AmountUSD,
		CommissionRate:   operation.CommissionRate,
		CommissionAmount: operation.CommissionAmount,
		FXCommission:     operation.FXCommission,
		NetAmount:        operation.NetAmount,
		EstimatedUSDT:    operation.EstimatedUSDT,
		ActualUSDT:       operation.ActualUSDT,
		USDTWallet:       operation.USDTWallet,
		Status:           string(operation.Status),
		CollectorID:      operation.CollectorID,
		CollectorName:    operation.CollectorName(),
		FXProvider:       operation.FXProvider,
		Priority:         string(operation.Priority),
		CreatedAt:        operation.CreatedAt,
		Deadline:         operation.Deadline,
		CompletedAt:      operation.CompletedAt,
		Notes:            operation.Notes,
	}
}

func FromDomainOperations(operations []*domain.Operation) []OperationResponse {
	out := make([]OperationResponse, 0, len(operations))
	for _, operation := range operations {
		out = append(out, FromDomainOperation(operation))
	}
	return out
}

type OperationLogResponse struct {
	ID          string    `json:"id"`
	OperationID string    `json:"operation_id"`
	UserID      *string   `json:"user_id,omitempty"`
	Action      string    `json:"action"`
	Details     string    `json:"details,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

func FromDomainLogs(logs []*domain.OperationLog) []OperationLogResponse {
	out := make([]OperationLogResponse, 0, len(logs))
	for _, entry := range logs {
		out = append(out, OperationLogResponse{
			ID:          entry.ID,
			OperationID: entry.OperationID,
			UserID:      entry.UserID,
			Action:      entry.Action,
			Details:     entry.Details,
			Timestamp:   entry.Timestamp,
		})
	}
	return out
}

type AnalyticsResponse struct {
	TotalOperations      int64           `json:"total_operations"`
	TotalVolume          decimal.Decimal `json:"total_volume"`
	CompletedOperations  int64           `json:"completed_operations"`
	ActiveOperations     int64           `json:"active_operations"`
	TotalCommission      decimal.Decimal `json:"total_commission"`
	CompletionRate       float64         `json:"completion_rate"`
	AverageOperationSize decimal.Decimal `json:"average_operation_size"`
}

func FromDomainAnalytics(analytics *domain.OperationAnalytics) AnalyticsResponse {
	return AnalyticsResponse{
		TotalOperations:      analytics.TotalOperations,
		TotalVolume:          analytics.TotalVolume,
		CompletedOperations:  analytics.CompletedOperations,
		ActiveOperations:     analytics.ActiveOperations,
		TotalCommission:      analytics.TotalCommission,
		CompletionRate:       analytics.CompletionRate,
		AverageOperationSize: analytics.AverageOperationSize,
	}
}

type DailyVolumeResponse struct {
	Date   string          `json:"date"`
	Volume decimal.Decimal `json:"volume"`
	Count  int64           `json:"count"`
}

func FromDomainDailyVolume(trend []domain.DailyVolume) []DailyVolumeResponse {
	out := make([]DailyVolumeResponse, 0, len(trend))
	for _, point := range trend {
		out = append(out, DailyVolumeResponse{
			Date:   point.Date.Format("2006-01-02"),
			Volume: point.Volume,
			Count:  point.Count,
		})
	}
	return out
}
