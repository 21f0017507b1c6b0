package authdto

import (
	"time"

	"github.com/alma-platform/alma-operations-service/internal/domain"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role"`
	FullName  string     `json:"full_name,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func FromDomainUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		FullName:  user.FullName,
		Phone:     user.Phone,
		LastLogin: user.LastLogin,
	}
}

func FromDomainUsers(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, FromDomainUser(user))
	}
	return out
}
