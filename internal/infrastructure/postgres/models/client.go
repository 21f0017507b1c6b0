package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alma-platform/alma-operations-service/internal/domain"
)

type ClientModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	Name            string `gorm:"size:100"`
	Phone           string `gorm:"size:20"`
	Email           string `gorm:"size:100"`
	Tier            domain.ClientTier `gorm:"size:20"`
	TotalOperations int64
	TotalVolume     decimal.Decimal `gorm:"type:numeric(15,2)"`
	Notes           string          `gorm:"type:text"`
	CreatedAt       time.Time
}

func (ClientModel) TableName() string {
	return "clients"
}
