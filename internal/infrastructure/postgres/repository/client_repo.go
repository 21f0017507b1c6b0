package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/alma-platform/alma-operations-service/internal/domain"
	"github.com/alma-platform/alma-operations-service/internal/infrastructure/postgres/mappers"
	"github.com/alma-platform/alma-operations-service/internal/infrastructure/postgres/models"
)

type DefaultClientRepository struct {
	DB *gorm.DB
}

func NewDefaultClientRepository(db *gorm.DB) *DefaultClientRepository {
	return &DefaultClientRepository{DB: db}
}

func (r *DefaultClientRepository) CreateClient(ctx context.Context, client *domain.Client) error {
	if err := r.DB.WithContext(ctx).Create(mappers.ToGORMClient(client)).Error; err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *DefaultClientRepository) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	var model models.ClientModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}

	return mappers.ToDomainClient(&model), nil
}

func (r *DefaultClientRepository) GetAllClients(ctx context.Context) ([]*domain.Client, error) {
	var clientModels []models.ClientModel
	if err := r.DB.WithContext(ctx).Order("name").Find(&clientModels).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	clients := make([]*domain.Client, 0, len(clientModels))
	for i := range clientModels {
		clients = append(clients, mappers.ToDomainClient(&clientModels[i]))
	}

	return clients, nil
}
