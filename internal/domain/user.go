package domain

import "time"

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleFXProvider UserRole = "fx_provider"
	RoleCollector  UserRole = "collector"
)

// ParseRole validates a role label at the system boundary.
func ParseRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleAdmin, RoleFXProvider, RoleCollector:
		return UserRole(s), nil
	}
	return "", ErrUnknownRole
}

// User is an operator account. Role gates which dashboard actions are
// available.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	FullName     string
	Phone        string
	IsActive     bool
	CreatedAt    time.Time
	LastLogin    *time.Time
}
