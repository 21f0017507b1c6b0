package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/alma-platform/alma-operations-service/internal/domain"
	"github.com/alma-platform/alma-operations-service/internal/infrastructure/postgres/mappers"
	"github.com/alma-platform/alma-operations-service/internal/infrastructure/postgres/models"
)

type DefaultOperationRepository struct {
	DB *gorm.DB
}

func NewDefaultOperationRepository(db *gorm.DB) *DefaultOperationRepository {
	return &DefaultOperationRepository{DB: db}
}

// CreateOperation commits the operation row, its creation audit entry and
// the owning client's aggregate update as one transaction.
func (r *DefaultOperationRepository) CreateOperation(ctx context.Context, operation *domain.Operation, entry *domain.OperationLog) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mappers.ToGORMOperation(operation)).Error; err != nil {
			return err
		}

		if err := tx.Create(mappers.ToGORMOperationLog(entry)).Error; err != nil {
			return err
		}

		var clientModel models.ClientModel
		if err := tx.First(&clientModel, "id = ?", operation.ClientID).Error; err != nil {
			return err
		}

		client := mappers.ToDomainClient(&clientModel)
		client.RecordOperation(operation.AmountUSD)

		return tx.Model(&models.ClientModel{}).
			Where("id = ?", client.ID).
			Updates(map[string]interface{}{
				"tier":             client.Tier,
				"total_operations": client.TotalOperations,
				"total_volume":     client.TotalVolume,
			}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("create operation: %w", err)
	}

	return nil
}

// UpdateOperation persists status-related fields together with the audit
// entry. The entry is append-only and never touched afterwards.
func (r *DefaultOperationRepository) UpdateOperation(ctx context.Context, operation *domain.Operation, entry *domain.OperationLog) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.OperationModel{}).
			Where("id = ?", operation.ID).
			Updates(map[string]interface{}{
				"status":       operation.Status,
				"completed_at": operation.CompletedAt,
				"collector_id": operation.CollectorID,
				"notes":        operation.Notes,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrOperationNotFound
		}

		return tx.Create(mappers.ToGORMOperationLog(entry)).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrOperationNotFound) {
			return err
		}
		return fmt.Errorf("update operation: %w", err)
	}

	return nil
}

func (r *DefaultOperationRepository) GetOperationByID(ctx context.Context, operationID string) (*domain.Operation, error) {
	var model models.OperationModel
	err := r.DB.WithContext(ctx).
		Preload("Client").
		Preload("Collector").
		First(&model, "id = ?", operationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOperationNotFound
		}
		return nil, fmt.Errorf("get operation: %w", err)
	}

	return mappers.ToDomainOperation(&model), nil
}

func (r *DefaultOperationRepository) GetOperationByCode(ctx context.Context, code string) (*domain.Operation, error) {
	var model models.OperationModel
	err := r.DB.WithContext(ctx).
		Preload("Client").
		Preload("Collector").
		First(&model, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOperationNotFound
		}
		return nil, fmt.Errorf("get operation by code: %w", err)
	}

	return mappers.ToDomainOperation(&model), nil
}

func (r *DefaultOperationRepository) ListOperations(ctx context.Context, filters domain.OperationFilters) ([]*domain.Operation, error) {
	query := r.DB.WithContext(ctx).
		Model(&models.OperationModel{}).
		Preload("Client").
		Preload("Collector")

	if len(filters.Statuses) > 0 {
		query = query.Where("operations.status IN (?)", filters.Statuses)
	}
	if len(filters.CollectorIDs) > 0 {
		query = query.Where("operations.collector_id IN (?)", filters.CollectorIDs)
	}
	if len(filters.Priorities) > 0 {
		query = query.Where("operations.priority IN (?)", filters.Priorities)
	}
	if len(filters.FXProviders) > 0 {
		query = query.Where("operations.fx_provider IN (?)", filters.FXProviders)
	}
	if filters.MinAmount.IsPositive() {
		query = query.Where("operations.amount_usd >= ?", filters.MinAmount)
	}
	if filters.MaxAmount.IsPositive() {
		query = query.Where("operations.amount_usd <= ?", filters.MaxAmount)
	}
	if !filters.DateFrom.IsZero() {
		query = query.Where("operations.created_at >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		query = query.Where("operations.created_at <= ?", filters.DateTo)
	}

	var operationModels []models.OperationModel
	if err := query.Order("operations.created_at DESC").Find(&operationModels).Error; err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}

	operations := make([]*domain.Operation, 0, len(operationModels))
	for i := range operationModels {
		operations = append(operations, mappers.ToDomainOperation(&operationModels[i]))
	}

	return operations, nil
}

func (r *DefaultOperationRepository) GetOperationLogs(ctx context.Context, operationID string) ([]*domain.OperationLog, error) {
	var logModels []models.OperationLogModel
	err := r.DB.WithContext(ctx).
		Where("operation_id = ?", operationID).
		Order("timestamp DESC").
		Find(&logModels).Error
	if err != nil {
		return nil, fmt.Errorf("get operation logs: %w", err)
	}

	logs := make([]*domain.OperationLog, 0, len(logModels))
	for i := range logModels {
		logs = append(logs, mappers.ToDomainOperationLog(&logModels[i]))
	}

	return logs, nil
}

func (r *DefaultOperationRepository) GetAnalytics(ctx context.Context, windowDays int) (*domain.OperationAnalytics, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -windowDays)

	windowed := func() *gorm.DB {
		return r.DB.WithContext(ctx).
			Model(&models.OperationModel{}).
			Where("created_at >= ?", cutoff)
	}

	analytics := &domain.OperationAnalytics{
		TotalVolume:          decimal.Zero,
		TotalCommission:      decimal.Zero,
		AverageOperationSize: decimal.Zero,
	}

	type totalsAgg struct {
		Count  int64
		Volume decimal.Decimal
	}
	var totals totalsAgg
	if err := windowed().
		Select("COUNT(*) AS count, COALESCE(SUM(amount_usd), 0) AS volume").
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("totals agg: %w", err)
	}
	analytics.TotalOperations = totals.Count
	analytics.TotalVolume = totals.Volume

	type completedAgg struct {
		Count      int64
		Commission decimal.Decimal
	}
	var completed completedAgg
	if err := windowed().
		Where("status = ?", domain.StatusCompleted).
		Select("COUNT(*) AS count, COALESCE(SUM(commission_amount), 0) AS commission").
		Scan(&completed).Error; err != nil {
		return nil, fmt.Errorf("completed agg: %w", err)
	}
	analytics.CompletedOperations = completed.Count
	analytics.TotalCommission = completed.Commission

	// The active count is a point-in-time figure and is not windowed.
	if err := r.DB.WithContext(ctx).
		Model(&models.OperationModel{}).
		Where("status IN (?)", domain.ActiveStatuses).
		Count(&analytics.ActiveOperations).Error; err != nil {
		return nil, fmt.Errorf("active count: %w", err)
	}

	if analytics.TotalOperations > 0 {
		analytics.CompletionRate = float64(analytics.CompletedOperations) / float64(analytics.TotalOperations) * 100
		analytics.AverageOperationSize = analytics.TotalVolume.
			Div(decimal.NewFromInt(analytics.TotalOperations)).Round(2)
	}

	return analytics, nil
}

func (r *DefaultOperationRepository) GetDailyVolume(ctx context.Context, days int) ([]domain.DailyVolume, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	type dailyAgg struct {
		Date   time.Time
		Volume decimal.Decimal
		Count  int64
	}

	var rows []dailyAgg
	err := r.DB.WithContext(ctx).
		Model(&models.OperationModel{}).
		Where("created_at >= ?", cutoff).
		Select("DATE(created_at) AS date, COALESCE(SUM(amount_usd), 0) AS volume, COUNT(*) AS count").
		Group("DATE(created_at)").
		Order("DATE(created_at)").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("daily volume agg: %w", err)
	}

	trend := make([]domain.DailyVolume, 0, len(rows))
	for _, row := range rows {
		trend = append(trend, domain.DailyVolume{Date: row.Date, Volume: row.Volume, Count: row.Count})
	}

	return trend, nil
}
