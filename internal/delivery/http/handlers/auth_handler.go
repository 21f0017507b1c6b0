package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdto "github.com/alma-platform/alma-operations-service/internal/delivery/http/dto/auth"
	"github.com/alma-platform/alma-operations-service/internal/domain"
	"github.com/alma-platform/alma-operations-service/internal/usecase"
)

type AuthHandler struct {
	UserUsecase usecase.UserUsecase
}

func NewAuthHandler(userUsecase usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{UserUsecase: userUsecase}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.UserUsecase.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, authdto.FromDomainUser(user))
}

type UserHandler struct {
	UserUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase}
}

func (h *UserHandler) ListUsersByRole(c *gin.Context) {
	role, err := domain.ParseRole(c.Query("role"))
	if err != nil {
		respondError(c, err)
		return
	}

	users, err := h.UserUsecase.GetUsersByRole(c.Request.Context(), role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": authdto.FromDomainUsers(users)})
}
