package operationdto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alma-platform/alma-operations-service/internal/domain"
)

type CreateOperationInput struct {
	ClientID      string
	ClientName    string
	Amount        decimal.Decimal
	USDTWallet    string
	PickupAddress string

	CollectorID *string
	FXProvider  string
	Priority    domain.Priority
	Deadline    *time.Time
	Notes       string

	// Acting user, nil for system-created operations.
	CreatedBy *string
}

type UpdateStatusInput struct {
	OperationID string
	NewStatus   domain.OperationStatus
	ActorID     *string
	Notes       string
}
