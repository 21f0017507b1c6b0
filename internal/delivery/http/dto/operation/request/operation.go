package request

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateOperationRequest struct {
	ClientID      string          `json:"client_id" binding:"required"`
	ClientName    string          `json:"client_name"`
	Amount        decimal.Decimal `json:"amount"`
	USDTWallet    string          `json:"usdt_wallet"`
	PickupAddress string          `json:"pickup_address"`
	CollectorID   *string         `json:"collector_id"`
	FXProvider    string          `json:"fx_provider"`
	Priority      string          `json:"priority"`
	Deadline      *time.Time      `json:"deadline"`
	Notes         string          `json:"notes"`
	CreatedBy     *string         `json:"created_by"`
}

type UpdateStatusRequest struct {
	Status  string  `json:"status" binding:"required"`
	ActorID *string `json:"actor_id"`
	Notes   string  `json:"notes"`
}

type CancelOperationRequest struct {
	ActorID *string `json:"actor_id"`
}
