package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/alma-platform/alma-operations-service/internal/domain"
)

// MemoryClientRepository owns the mutex shared by the whole in-memory
// store, so operation writes and client aggregate updates stay atomic.
type MemoryClientRepository struct {
	mu      *sync.RWMutex
	clients map[string]*domain.Client
}

func NewMemoryClientRepository() *MemoryClientRepository {
	return &MemoryClientRepository{
		mu:      &sync.RWMutex{},
		clients: make(map[string]*domain.Client),
	}
}

func (r *MemoryClientRepository) CreateClient(ctx context.Context, client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *client
	r.clients[copied.ID] = &copied

	return nil
}

func (r *MemoryClientRepository) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[clientID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}

	copied := *client
	return &copied, nil
}

func (r *MemoryClientRepository) GetAllClients(ctx context.Context) ([]*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*domain.Client, 0, len(r.clients))
	for _, client := range r.clients {
		copied := *client
		clients = append(clients, &copied)
	}

	sort.Slice(clients, func(i, j int) bool {
		return clients[i].Name < clients[j].Name
	})

	return clients, nil
}
