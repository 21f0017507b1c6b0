package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alma-platform/alma-operations-service/internal/domain"
)

type ClientUsecase interface {
	CreateClient(ctx context.Context, client *domain.Client) error
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	GetAllClients(ctx context.Context) ([]*domain.Client, error)
}

type DefaultClientUsecase struct {
	ClientRepo domain.ClientRepository
}

func NewDefaultClientUsecase(clientRepo domain.ClientRepository) *DefaultClientUsecase {
	return &DefaultClientUsecase{ClientRepo: clientRepo}
}

// CreateClient registers a new customer. Tier always starts at regular;
// promotion happens only through recorded operations.
func (uc *DefaultClientUsecase) CreateClient(ctx context.Context, client *domain.Client) error {
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	client.Tier = domain.TierRegular
	client.TotalOperations = 0
	client.TotalVolume = decimal.Zero
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now().UTC()
	}

	return uc.ClientRepo.CreateClient(ctx, client)
}

func (uc *DefaultClientUsecase) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	return uc.ClientRepo.GetClientByID(ctx, clientID)
}

func (uc *DefaultClientUsecase) GetAllClients(ctx context.Context) ([]*domain.Client, error) {
	return uc.ClientRepo.GetAllClients(ctx)
}
