package memory

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/alma-platform/alma-operations-service/internal/domain"
)

// SeedSampleData loads the demo users and clients so every dashboard works
// out of the box when no database is configured.
func SeedSampleData(users *MemoryUserRepository, clients *MemoryClientRepository) error {
	ctx := context.Background()

	defaultUsers := []struct {
		username string
		password string
		email    string
		role     domain.UserRole
		fullName string
		phone    string
	}{
		{"admin", "admin123", "admin@alma.com", domain.RoleAdmin, "Administrator", "+1234567890"},
		{"fx_provider", "fx123", "fx@alma.com", domain.RoleFXProvider, "FX Provider", "+1234567891"},
		{"jessica", "jessica123", "jessica@alma.com", domain.RoleCollector, "Jessica Garcia", "+1234567892"},
		{"carlos", "carlos123", "carlos@alma.com", domain.RoleCollector, "Carlos Rodriguez", "+1234567893"},
	}

	for _, u := range defaultUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		err = users.CreateUser(ctx, &domain.User{
			ID:           uuid.NewString(),
			Username:     u.username,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			FullName:     u.fullName,
			Phone:        u.phone,
			IsActive:     true,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			return err
		}
	}

	sampleClients := []struct {
		name       string
		phone      string
		email      string
		tier       domain.ClientTier
		operations int64
		volume     int64
	}{
		{"John Smith", "+1555001001", "john.smith@email.com", domain.TierFrequent, 12, 150000},
		{"Maria Garcia", "+1555001002", "maria.garcia@email.com", domain.TierRegular, 3, 25000},
		{"David Chen", "+1555001003", "david.chen@email.com", domain.TierFrequent, 8, 85000},
		{"Sarah Johnson", "+1555001004", "sarah.johnson@email.com", domain.TierRegular, 2, 18000},
	}

	for _, c := range sampleClients {
		err := clients.CreateClient(ctx, &domain.Client{
			ID:              uuid.NewString(),
			Name:            c.name,
			Phone:           c.phone,
			Email:           c.email,
			Tier:            c.tier,
			TotalOperations: c.operations,
			TotalVolume:     decimal.NewFromInt(c.volume),
			CreatedAt:       time.Now().UTC(),
		})
		if err != nil {
			return err
		}
	}

	slog.Info("sample data seeded", "users", len(defaultUsers), "clients", len(sampleClients))
	return nil
}
