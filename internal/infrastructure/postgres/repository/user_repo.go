package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/alma-platform/alma-operations-service/internal/domain"
	"github.com/alma-platform/alma-operations-service/internal/infrastructure/postgres/mappers"
	"github.com/alma-platform/alma-operations-service/internal/infrastructure/postgres/models"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if err := r.DB.WithContext(ctx).Create(mappers.ToGORMUser(user)).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *DefaultUserRepository) GetActiveUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var model models.UserModel
	err := r.DB.WithContext(ctx).
		First(&model, "username = ? AND is_active = ?", username, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return mappers.ToDomainUser(&model), nil
}

func (r *DefaultUserRepository) GetUsersByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error) {
	var userModels []models.UserModel
	err := r.DB.WithContext(ctx).
		Where("role = ? AND is_active = ?", role, true).
		Order("full_name").
		Find(&userModels).Error
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}

	users := make([]*domain.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, mappers.ToDomainUser(&userModels[i]))
	}

	return users, nil
}

func (r *DefaultUserRepository) UpdateLastLogin(ctx context.Context, userID string) error {
	err := r.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", userID).
		Update("last_login", time.Now().UTC()).Error
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}
