package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alma-platform/alma-operations-service/internal/domain"
)

// respondError maps the domain error taxonomy onto HTTP statuses. Storage
// failures surface as a generic 500 without detail.
func respondError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErr.Errors})
		return
	}

	var conflictErr *domain.StateConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Error()})
		return
	}

	switch {
	case errors.Is(err, domain.ErrOperationNotFound),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrInvalidCredentials.Error()})
	case errors.Is(err, domain.ErrUnknownStatus), errors.Is(err, domain.ErrUnknownRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
