package models

import (
	"time"

	"github.com/alma-platform/alma-operations-service/internal/domain"
)

type UserModel struct {
	ID           string          `gorm:"primaryKey;type:uuid"`
	Username     string          `gorm:"uniqueIndex;size:50"`
	Email        string          `gorm:"size:100"`
	PasswordHash string          `gorm:"size:255"`
	Role         domain.UserRole `gorm:"size:20;index"`
	FullName     string          `gorm:"size:100"`
	Phone        string          `gorm:"size:20"`
	IsActive     bool            `gorm:"default:true"`
	CreatedAt    time.Time
	LastLogin    *time.Time
}

func (UserModel) TableName() string {
	return "users"
}
