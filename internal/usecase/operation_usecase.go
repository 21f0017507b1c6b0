package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"

	"github.com/alma-platform/alma-operations-service/internal/domain"
	publisher "github.com/alma-platform/alma-operations-service/internal/infrastructure/kafka"
	"github.com/alma-platform/alma-operations-service/internal/infrastructure/metrics"
	operationdto "github.com/alma-platform/alma-operations-service/internal/usecase/dto/operation"
)

const (
	listingCacheTTL = 5 * time.Minute

	// First attempt keeps the historical three-digit suffix; collisions
	// retry with a wider alphanumeric one.
	codeRetryAttempts = 5
)

type OperationUsecase interface {
	CreateOperation(ctx context.Context, input *operationdto.CreateOperationInput) (*domain.Operation, error)
	UpdateOperationStatus(ctx context.Context, input *operationdto.UpdateStatusInput) (*domain.Operation, error)
	CancelOperation(ctx context.Context, operationID string, actorID *string) (bool, error)

	GetOperationByID(ctx context.Context, operationID string) (*domain.Operation, error)
	GetOperationByCode(ctx context.Context, code string) (*domain.Operation, error)
	ListOperations(ctx context.Context, filters domain.OperationFilters) ([]*domain.Operation, error)
	GetOperationLogs(ctx context.Context, operationID string) ([]*domain.OperationLog, error)

	GetAnalytics(ctx context.Context, windowDays int) (*domain.OperationAnalytics, error)
	GetDailyVolume(ctx context.Context, days int) ([]domain.DailyVolume, error)

	ExportOperationsCSV(ctx context.Context, filters domain.OperationFilters) (string, []byte, error)
}

type DefaultOperationUsecase struct {
	OperationRepo domain.OperationRepository
	ClientRepo    domain.ClientRepository
	Cache         domain.ListingCache
	Publisher     domain.PublisherPort
	EventTopic    string
	Metrics       *metrics.OperationMetrics
}

func NewDefaultOperationUsecase(
	operationRepo domain.OperationRepository,
	clientRepo domain.ClientRepository,
	cache domain.ListingCache,
	publisher domain.PublisherPort,
	eventTopic string,
	operationMetrics *metrics.OperationMetrics) *DefaultOperationUsecase {

	return &DefaultOperationUsecase{
		OperationRepo: operationRepo,
		ClientRepo:    clientRepo,
		Cache:         cache,
		Publisher:     publisher,
		EventTopic:    eventTopic,
		Metrics:       operationMetrics,
	}
}

func (uc *DefaultOperationUsecase) CreateOperation(ctx context.Context, input *operationdto.CreateOperationInput) (*domain.Operation, error) {
	violations := domain.ValidateOperationInput(domain.OperationInput{
		ClientName:    input.ClientName,
		Amount:        input.Amount,
		USDTWallet:    input.USDTWallet,
		PickupAddress: input.PickupAddress,
	})
	if len(violations) > 0 {
		return nil, &domain.ValidationError{Errors: violations}
	}

	client, err := uc.ClientRepo.GetClientByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}

	breakdown := domain.CalculateCommission(input.Amount, client.Tier)

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}

	var operation *domain.Operation
	created := false
	for attempt := 0; attempt < codeRetryAttempts; attempt++ {
		code, err := newOperationCode(attempt > 0)
		if err != nil {
			return nil, err
		}

		operation = &domain.Operation{
			ID:               uuid.NewString(),
			Code:             code,
			ClientID:         client.ID,
			PickupAddress:    input.PickupAddress,
			AmountUSD:        input.Amount,
			CommissionRate:   breakdown.Rate,
			CommissionAmount: breakdown.CommissionAmount,
			FXCommission:     breakdown.FXCommission,
			NetAmount:        breakdown.NetAmount,
			EstimatedUSDT:    domain.EstimateUSDT(breakdown.NetAmount),
			USDTWallet:       input.USDTWallet,
			Status:           domain.StatusPending,
			CollectorID:      input.CollectorID,
			FXProvider:       input.FXProvider,
			Priority:         priority,
			CreatedAt:        time.Now().UTC(),
			Deadline:         input.Deadline,
			Notes:            input.Notes,
		}

		entry := &domain.OperationLog{
			ID:          uuid.NewString(),
			OperationID: operation.ID,
			UserID:      input.CreatedBy,
			Action:      domain.ActionOperationCreated,
			Details:     fmt.Sprintf("Operation %s created with amount %s", code, formatUSD(input.Amount)),
			Timestamp:   time.Now().UTC(),
		}

		err = uc.OperationRepo.CreateOperation(ctx, operation, entry)
		if err == nil {
			created = true
			break
		}
		if errors.Is(err, domain.ErrDuplicateCode) {
			slog.Warn("operation code collision, retrying", "code", code, "attempt", attempt+1)
			continue
		}
		uc.recordError("create")
		return nil, err
	}
	if !created {
		return nil, domain.ErrDuplicateCode
	}

	uc.invalidateListing(ctx)
	uc.recordCreated(operation)
	uc.publishEvent("operation.created", operation)

	return uc.OperationRepo.GetOperationByID(ctx, operation.ID)
}

func (uc *DefaultOperationUsecase) UpdateOperationStatus(ctx context.Context, input *operationdto.UpdateStatusInput) (*domain.Operation, error) {
	operation, err := uc.OperationRepo.GetOperationByID(ctx, input.OperationID)
	if err != nil {
		return nil, err
	}

	if !operation.Status.CanTransition(input.NewStatus) {
		return nil, &domain.StateConflictError{Current: operation.Status, Requested: input.NewStatus}
	}

	oldStatus := operation.Status
	operation.Status = input.NewStatus
	if input.NewStatus == domain.StatusCompleted {
		now := time.Now().UTC()
		operation.CompletedAt = &now
	}

	details := fmt.Sprintf("Status changed from %s to %s", oldStatus, input.NewStatus)
	if input.Notes != "" {
		details += fmt.Sprintf(". Notes: %s", input.Notes)
	}

	entry := &domain.OperationLog{
		ID:          uuid.NewString(),
		OperationID: operation.ID,
		UserID:      input.ActorID,
		Action:      domain.ActionStatusUpdated,
		Details:     details,
		Timestamp:   time.Now().UTC(),
	}

	if err := uc.OperationRepo.UpdateOperation(ctx, operation, entry); err != nil {
		uc.recordError("update_status")
		return nil, err
	}

	uc.invalidateListing(ctx)
	uc.recordStatusChange(operation)
	uc.publishEvent("operation.status_changed", operation)

	return operation, nil
}

// CancelOperation soft-deletes by transitioning into Cancelled. Only
// operations still in Pending or Assigned can go through this path.
// The boolean reports existence; error kinds distinguish not-found from a
// state conflict.
func (uc *DefaultOperationUsecase) CancelOperation(ctx context.Context, operationID string, actorID *string) (bool, error) {
	operation, err := uc.OperationRepo.GetOperationByID(ctx, operationID)
	if err != nil {
		return false, err
	}

	if operation.Status != domain.StatusPending && operation.Status != domain.StatusAssigned {
		return false, &domain.StateConflictError{Current: operation.Status, Action: "cancel"}
	}

	operation.Status = domain.StatusCancelled

	entry := &domain.OperationLog{
		ID:          uuid.NewString(),
		OperationID: operation.ID,
		UserID:      actorID,
		Action:      domain.ActionOperationCancelled,
		Details:     "Operation cancelled by user",
		Timestamp:   time.Now().UTC(),
	}

	if err := uc.OperationRepo.UpdateOperation(ctx, operation, entry); err != nil {
		uc.recordError("cancel")
		return false, err
	}

	uc.invalidateListing(ctx)
	uc.recordCancelled(operation)
	uc.publishEvent("operation.cancelled", operation)

	return true, nil
}

func (uc *DefaultOperationUsecase) GetOperationByID(ctx context.Context, operationID string) (*domain.Operation, error) {
	return uc.OperationRepo.GetOperationByID(ctx, operationID)
}

func (uc *DefaultOperationUsecase) GetOperationByCode(ctx context.Context, code string) (*domain.Operation, error) {
	return uc.OperationRepo.GetOperationByCode(ctx, code)
}

func (uc *DefaultOperationUsecase) ListOperations(ctx context.Context, filters domain.OperationFilters) ([]*domain.Operation, error) {
	unfiltered := filtersEmpty(filters)

	if unfiltered && uc.Cache != nil {
		if cached, err := uc.Cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	operations, err := uc.OperationRepo.ListOperations(ctx, filters)
	if err != nil {
		return nil, err
	}

	if unfiltered && uc.Cache != nil {
		if err := uc.Cache.Set(ctx, operations, listingCacheTTL); err != nil {
			slog.Warn("failed to cache operation listing", "error", err.Error())
		}
	}

	return operations, nil
}

func (uc *DefaultOperationUsecase) GetOperationLogs(ctx context.Context, operationID string) ([]*domain.OperationLog, error) {
	return uc.OperationRepo.GetOperationLogs(ctx, operationID)
}

func (uc *DefaultOperationUsecase) GetAnalytics(ctx context.Context, windowDays int) (*domain.OperationAnalytics, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	return uc.OperationRepo.GetAnalytics(ctx, windowDays)
}

func (uc *DefaultOperationUsecase) GetDailyVolume(ctx context.Context, days int) ([]domain.DailyVolume, error) {
	if days <= 0 {
		days = 7
	}
	return uc.OperationRepo.GetDailyVolume(ctx, days)
}

// newOperationCode builds the date-scoped human-readable code. The first
// attempt mirrors the historical three-digit suffix; wide suffixes are used
// after a unique-constraint conflict. go-nanoid cannot produce suffixes
// shorter than five characters, so the three-digit one is drawn from
// crypto/rand directly.
func newOperationCode(wide bool) (string, error) {
	date := time.Now().UTC().Format("2006-01-02")

	if !wide {
		n, err := rand.Int(rand.Reader, big.NewInt(1000))
		if err != nil {
			return "", fmt.Errorf("generate code suffix: %w", err)
		}
		return fmt.Sprintf("MSB-%s-%03d", date, n.Int64()), nil
	}

	generate, err := nanoid.CustomASCII("0123456789", 6)
	if err != nil {
		return "", fmt.Errorf("init code generator: %w", err)
	}

	return fmt.Sprintf("MSB-%s-%s", date, generate()), nil
}

func filtersEmpty(f domain.OperationFilters) bool {
	return len(f.Statuses) == 0 &&
		len(f.CollectorIDs) == 0 &&
		len(f.Priorities) == 0 &&
		len(f.FXProviders) == 0 &&
		!f.MinAmount.IsPositive() &&
		!f.MaxAmount.IsPositive() &&
		f.DateFrom.IsZero() &&
		f.DateTo.IsZero()
}

func (uc *DefaultOperationUsecase) invalidateListing(ctx context.Context) {
	if uc.Cache == nil {
		return
	}
	if err := uc.Cache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate listing cache", "error", err.Error())
	}
}

func (uc *DefaultOperationUsecase) publishEvent(kind string, operation *domain.Operation) {
	if uc.Publisher == nil {
		return
	}

	event := publisher.OperationEvent{
		Kind:        kind,
		OperationID: operation.ID,
		Code:        operation.Code,
		ClientID:    operation.ClientID,
		Status:      string(operation.Status),
		AmountUSD:   operation.AmountUSD.InexactFloat64(),
		Priority:    string(operation.Priority),
		Timestamp:   time.Now().UTC(),
	}

	go func(event publisher.OperationEvent) {
		msg, err := event.Message()
		if err != nil {
			slog.Error("failed to marshal operation event", "error", err.Error())
			return
		}
		if err := uc.Publisher.Publish(uc.EventTopic, msg); err != nil {
			slog.Error("failed to publish operation event", "kind", kind, "error", err.Error())
		}
	}(event)
}
