package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/alma-platform/alma-operations-service/internal/domain"
)

type UserUsecase interface {
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GetUsersByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User, password string) error
}

type DefaultUserUsecase struct {
	UserRepo domain.UserRepository
}

func NewDefaultUserUsecase(userRepo domain.UserRepository) *DefaultUserUsecase {
	return &DefaultUserUsecase{UserRepo: userRepo}
}

// Authenticate looks up an active user and verifies the credential. Both
// unknown-username and wrong-password cases surface the same
// ErrInvalidCredentials so callers cannot enumerate accounts.
func (uc *DefaultUserUsecase) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := uc.UserRepo.GetActiveUserByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := uc.UserRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the timestamp is best effort.
		slog.Warn("failed to update last login", "user_id", user.ID, "error", err.Error())
	}
	now := time.Now().UTC()
	user.LastLogin = &now

	return user, nil
}

func (uc *DefaultUserUsecase) GetUsersByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error) {
	return uc.UserRepo.GetUsersByRole(ctx, role)
}

func (uc *DefaultUserUsecase) CreateUser(ctx context.Context, user *domain.User, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.PasswordHash = hash
	user.IsActive = true
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	return uc.UserRepo.CreateUser(ctx, user)
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
