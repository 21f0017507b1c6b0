package domain

import "context"

// OperationRepository is the persistence contract for operations and their
// audit trail. The mutating methods are transactional as a unit: the
// operation row, the audit entry and the client aggregates commit together
// or not at all.
type OperationRepository interface {
	// CreateOperation persists the operation, appends its creation log
	// entry and folds the amount into the owning client's cumulative
	// stats atomically. Returns ErrDuplicateCode when the human-readable
	// code collides with an existing one.
	CreateOperation(ctx context.Context, operation *Operation, entry *OperationLog) error

	// UpdateOperation persists the operation's mutated status fields and
	// appends the audit entry atomically.
	UpdateOperation(ctx context.Context, operation *Operation, entry *OperationLog) error

	GetOperationByID(ctx context.Context, operationID string) (*Operation, error)
	GetOperationByCode(ctx context.Context, code string) (*Operation, error)

	// ListOperations returns matches ordered by creation time descending.
	ListOperations(ctx context.Context, filters OperationFilters) ([]*Operation, error)

	GetOperationLogs(ctx context.Context, operationID string) ([]*OperationLog, error)

	GetAnalytics(ctx context.Context, windowDays int) (*OperationAnalytics, error)
	GetDailyVolume(ctx context.Context, days int) ([]DailyVolume, error)
}

type ClientRepository interface {
	CreateClient(ctx context.Context, client *Client) error
	GetClientByID(ctx context.Context, clientID string) (*Client, error)
	GetAllClients(ctx context.Context) ([]*Client, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	// GetActiveUserByUsername returns ErrUserNotFound for unknown or
	// deactivated usernames alike.
	GetActiveUserByUsername(ctx context.Context, username string) (*User, error)
	GetUsersByRole(ctx context.Context, role UserRole) ([]*User, error)
	UpdateLastLogin(ctx context.Context, userID string) error
}
