package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/alma-platform/alma-operations-service/internal/domain"
)

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]*domain.User)}
}

func (r *MemoryUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *user
	r.users[copied.ID] = &copied

	return nil
}

func (r *MemoryUserRepository) GetActiveUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username && user.IsActive {
			copied := *user
			return &copied, nil
		}
	}

	return nil, domain.ErrUserNotFound
}

func (r *MemoryUserRepository) GetUsersByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0)
	for _, user := range r.users {
		if user.Role == role && user.IsActive {
			copied := *user
			users = append(users, &copied)
		}
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].FullName < users[j].FullName
	})

	return users, nil
}

func (r *MemoryUserRepository) UpdateLastLogin(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}

	now := time.Now().UTC()
	user.LastLogin = &now

	return nil
}
