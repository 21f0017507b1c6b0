package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alma-platform/alma-operations-service/internal/domain"
)

// MemoryOperationRepository is the sample-data fallback used when no
// database DSN is configured. The single mutex gives the same
// one-writer-at-a-time guarantee the Postgres transactions provide.
type MemoryOperationRepository struct {
	mu         *sync.RWMutex
	operations map[string]*domain.Operation
	logs       map[string][]*domain.OperationLog
	clients    *MemoryClientRepository
}

func NewMemoryOperationRepository(clients *MemoryClientRepository) *MemoryOperationRepository {
	return &MemoryOperationRepository{
		mu:         clients.mu,
		operations: make(map[string]*domain.Operation),
		logs:       make(map[string][]*domain.OperationLog),
		clients:    clients,
	}
}

func (r *MemoryOperationRepository) CreateOperation(ctx context.Context, operation *domain.Operation, entry *domain.OperationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.operations {
		if existing.Code == operation.Code {
			return domain.ErrDuplicateCode
		}
	}

	client, ok := r.clients.clients[operation.ClientID]
	if !ok {
		return domain.ErrClientNotFound
	}
	client.RecordOperation(operation.AmountUSD)

	stored := *operation
	stored.Client = client
	r.operations[stored.ID] = &stored
	r.logs[stored.ID] = append(r.logs[stored.ID], entry)

	return nil
}

func (r *MemoryOperationRepository) UpdateOperation(ctx context.Context, operation *domain.Operation, entry *domain.OperationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.operations[operation.ID]
	if !ok {
		return domain.ErrOperationNotFound
	}

	stored.Status = operation.Status
	stored.CompletedAt = operation.CompletedAt
	stored.CollectorID = operation.CollectorID
	stored.Notes = operation.Notes
	r.logs[operation.ID] = append(r.logs[operation.ID], entry)

	return nil
}

func (r *MemoryOperationRepository) GetOperationByID(ctx context.Context, operationID string) (*domain.Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	operation, ok := r.operations[operationID]
	if !ok {
		return nil, domain.ErrOperationNotFound
	}

	copied := *operation
	return &copied, nil
}

func (r *MemoryOperationRepository) GetOperationByCode(ctx context.Context, code string) (*domain.Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, operation := range r.operations {
		if operation.Code == code {
			copied := *operation
			return &copied, nil
		}
	}

	return nil, domain.ErrOperationNotFound
}

func (r *MemoryOperationRepository) ListOperations(ctx context.Context, filters domain.OperationFilters) ([]*domain.Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*domain.Operation, 0, len(r.operations))
	for _, operation := range r.operations {
		if !matchesFilters(operation, filters) {
			continue
		}
		copied := *operation
		matches = append(matches, &copied)
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	return matches, nil
}

func matchesFilters(operation *domain.Operation, filters domain.OperationFilters) bool {
	if len(filters.Statuses) > 0 && !containsStatus(filters.Statuses, operation.Status) {
		return false
	}
	if len(filters.CollectorIDs) > 0 {
		if operation.CollectorID == nil || !containsString(filters.CollectorIDs, *operation.CollectorID) {
			return false
		}
	}
	if len(filters.Priorities) > 0 && !containsPriority(filters.Priorities, operation.Priority) {
		return false
	}
	if len(filters.FXProviders) > 0 && !containsString(filters.FXProviders, operation.FXProvider) {
		return false
	}
	if filters.MinAmount.IsPositive() && operation.AmountUSD.LessThan(filters.MinAmount) {
		return false
	}
	if filters.MaxAmount.IsPositive() && operation.AmountUSD.GreaterThan(filters.MaxAmount) {
		return false
	}
	if !filters.DateFrom.IsZero() && operation.CreatedAt.Before(filters.DateFrom) {
		return false
	}
	if !filters.DateTo.IsZero() && operation.CreatedAt.After(filters.DateTo) {
		return false
	}
	return true
}

func (r *MemoryOperationRepository) GetOperationLogs(ctx context.Context, operationID string) ([]*domain.OperationLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*domain.OperationLog, len(r.logs[operationID]))
	copy(entries, r.logs[operationID])

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	return entries, nil
}

func (r *MemoryOperationRepository) GetAnalytics(ctx context.Context, windowDays int) (*domain.OperationAnalytics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cutoff := time.Now().UTC().AddDate(0, 0, -windowDays)

	analytics := &domain.OperationAnalytics{
		TotalVolume:          decimal.Zero,
		TotalCommission:      decimal.Zero,
		AverageOperationSize: decimal.Zero,
	}

	for _, operation := range r.operations {
		// The active count is a point-in-time figure, not windowed.
		if containsStatus(domain.ActiveStatuses, operation.Status) {
			analytics.ActiveOperations++
		}

		if operation.CreatedAt.Before(cutoff) {
			continue
		}

		analytics.TotalOperations++
		analytics.TotalVolume = analytics.TotalVolume.Add(operation.AmountUSD)
		if operation.Status == domain.StatusCompleted {
			analytics.CompletedOperations++
			analytics.TotalCommission = analytics.TotalCommission.Add(operation.CommissionAmount)
		}
	}

	if analytics.TotalOperations > 0 {
		analytics.CompletionRate = float64(analytics.CompletedOperations) / float64(analytics.TotalOperations) * 100
		analytics.AverageOperationSize = analytics.TotalVolume.
			Div(decimal.NewFromInt(analytics.TotalOperations)).Round(2)
	}

	return analytics, nil
}

func (r *MemoryOperationRepository) GetDailyVolume(ctx context.Context, days int) ([]domain.DailyVolume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	byDay := make(map[time.Time]*domain.DailyVolume)
	for _, operation := range r.operations {
		if operation.CreatedAt.Before(cutoff) {
			continue
		}
		day := operation.CreatedAt.Truncate(24 * time.Hour)
		point, ok := byDay[day]
		if !ok {
			point = &domain.DailyVolume{Date: day, Volume: decimal.Zero}
			byDay[day] = point
		}
		point.Volume = point.Volume.Add(operation.AmountUSD)
		point.Count++
	}

	trend := make([]domain.DailyVolume, 0, len(byDay))
	for _, point := range byDay {
		trend = append(trend, *point)
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date.Before(trend[j].Date)
	})

	return trend, nil
}

func containsStatus(haystack []domain.OperationStatus, needle domain.OperationStatus) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsPriority(haystack []domain.Priority, needle domain.Priority) bool {
	for _, p := range haystack {
		if p == needle {
			return true
		}
	}
	return false
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
