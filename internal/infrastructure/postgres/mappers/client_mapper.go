package mappers

import (
	"github.com/alma-platform/alma-operations-service/internal/domain"
	"github.com/alma-platform/alma-operations-service/internal/infrastructure/postgres/models"
)

func ToDomainClient(model *models.ClientModel) *domain.Client {
	return &domain.Client{
		ID:              model.ID,
		Name:            model.Name,
		Phone:           model.Phone,
		Email:           model.Email,
		Tier:            model.Tier,
		TotalOperations: model.TotalOperations,
		TotalVolume:     model.TotalVolume,
		Notes:           model.Notes,
		CreatedAt:       model.CreatedAt,
	}
}

func ToGORMClient(client *domain.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:              client.ID,
		Name:            client.Name,
		Phone:           client.Phone,
		Email:           client.Email,
		Tier:            client.Tier,
		TotalOperations: client.TotalOperations,
		TotalVolume:     client.TotalVolume,
		Notes:           client.Notes,
		CreatedAt:       client.CreatedAt,
	}
}

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:           model.ID,
		Username:     model.Username,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Role:         model.Role,
		FullName:     model.FullName,
		Phone:        model.Phone,
		IsActive:     model.IsActive,
		CreatedAt:    model.CreatedAt,
		LastLogin:    model.LastLogin,
	}
}

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		FullName:     user.FullName,
		Phone:        user.Phone,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
		LastLogin:    user.LastLogin,
	}
}
