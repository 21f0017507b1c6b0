package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alma-platform/alma-operations-service/internal/domain"
)

type OperationModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	Code          string `gorm:"uniqueIndex:idx_operation_code;size:50"`
	ClientID      string `gorm:"type:uuid;index"`
	PickupAddress string `gorm:"type:text"`

	AmountUSD        decimal.Decimal  `gorm:"type:numeric(15,2);index:idx_amount"`
	CommissionRate   decimal.Decimal  `gorm:"type:numeric(5,4)"`
	CommissionAmount decimal.Decimal  `gorm:"type:numeric(15,2)"`
	FXCommission     decimal.Decimal  `gorm:"type:numeric(15,2)"`
	NetAmount        decimal.Decimal  `gorm:"type:numeric(15,2)"`
	EstimatedUSDT    decimal.Decimal  `gorm:"type:numeric(18,8)"`
	ActualUSDT       *decimal.Decimal `gorm:"type:numeric(18,8)"`

	USDTWallet  string                 `gorm:"size:100"`
	Status      domain.OperationStatus `gorm:"size:30;index:idx_status"`
	CollectorID *string                `gorm:"type:uuid"`
	FXProvider  string                 `gorm:"size:100"`
	Priority    string                 `gorm:"size:20"`

	CreatedAt   time.Time `gorm:"index:idx_created_at"`
	Deadline    *time.Time
	CompletedAt *time.Time
	Notes       string `gorm:"type:text"`

	Client    ClientModel `gorm:"foreignKey:ClientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Collector *UserModel  `gorm:"foreignKey:CollectorID;references:ID"`
}

func (OperationModel) TableName() string {
	return "operations"
}
