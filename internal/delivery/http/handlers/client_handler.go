package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/alma-platform/alma-operations-service/internal/domain"
	"github.com/alma-platform/alma-operations-service/internal/usecase"
)

type ClientHandler struct {
	ClientUsecase usecase.ClientUsecase
}

func NewClientHandler(clientUsecase usecase.ClientUsecase) *ClientHandler {
	return &ClientHandler{ClientUsecase: clientUsecase}
}

type createClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

type clientResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone,omitempty"`
	Email           string          `json:"email,omitempty"`
	Tier            string          `json:"tier"`
	TotalOperations int64           `json:"total_operations"`
	TotalVolume     decimal.Decimal `json:"total_volume"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func toClientResponse(client *domain.Client) clientResponse {
	return clientResponse{
		ID:              client.ID,
		Name:            client.Name,
		Phone:           client.Phone,
		Email:           client.Email,
		Tier:            string(client.Tier),
		TotalOperations: client.TotalOperations,
		TotalVolume:     client.TotalVolume,
		Notes:           client.Notes,
		CreatedAt:       client.CreatedAt,
	}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := &domain.Client{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	}
	if err := h.ClientUsecase.CreateClient(c.Request.Context(), client); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toClientResponse(client))
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.ClientUsecase.GetAllClients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]clientResponse, 0, len(clients))
	for _, client := range clients {
		out = append(out, toClientResponse(client))
	}

	c.JSON(http.StatusOK, gin.H{"clients": out})
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.ClientUsecase.GetClientByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toClientResponse(client))
}
