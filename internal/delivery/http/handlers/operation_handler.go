package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/alma-platform/alma-operations-service/internal/delivery/http/dto/operation/request"
	"github.com/alma-platform/alma-operations-service/internal/delivery/http/dto/operation/response"
	"github.com/alma-platform/alma-operations-service/internal/domain"
	"github.com/alma-platform/alma-operations-service/internal/usecase"
	operationdto "github.com/alma-platform/alma-operations-service/internal/usecase/dto/operation"
)

type OperationHandler struct {
	OperationUsecase usecase.OperationUsecase
}

func NewOperationHandler(operationUsecase usecase.OperationUsecase) *OperationHandler {
	return &OperationHandler{OperationUsecase: operationUsecase}
}

func (h *OperationHandler) CreateOperation(c *gin.Context) {
	var req request.CreateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	priority, ok := domain.ParsePriority(req.Priority)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown priority %q", req.Priority)})
		return
	}

	operation, err := h.OperationUsecase.CreateOperation(c.Request.Context(), &operationdto.CreateOperationInput{
		ClientID:      req.ClientID,
		ClientName:    req.ClientName,
		Amount:        req.Amount,
		USDTWallet:    req.USDTWallet,
		PickupAddress: req.PickupAddress,
		CollectorID:   req.CollectorID,
		FXProvider:    req.FXProvider,
		Priority:      priority,
		Deadline:      req.Deadline,
		Notes:         req.Notes,
		CreatedBy:     req.CreatedBy,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromDomainOperation(operation))
}

func (h *OperationHandler) ListOperations(c *gin.Context) {
	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	operations, err := h.OperationUsecase.ListOperations(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"operations": response.FromDomainOperations(operations)})
}

func (h *OperationHandler) GetOperationByCode(c *gin.Context) {
	operation, err := h.OperationUsecase.GetOperationByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDomainOperation(operation))
}

func (h *OperationHandler) GetOperationLogs(c *gin.Context) {
	// Existence check first so an unknown ID yields 404, not an empty list.
	if _, err := h.OperationUsecase.GetOperationByID(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	logs, err := h.OperationUsecase.GetOperationLogs(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": response.FromDomainLogs(logs)})
}

func (h *OperationHandler) UpdateStatus(c *gin.Context) {
	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newStatus, err := domain.ParseStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	operation, err := h.OperationUsecase.UpdateOperationStatus(c.Request.Context(), &operationdto.UpdateStatusInput{
		OperationID: c.Param("id"),
		NewStatus:   newStatus,
		ActorID:     req.ActorID,
		Notes:       req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDomainOperation(operation))
}

func (h *OperationHandler) CancelOperation(c *gin.Context) {
	var req request.CancelOperationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	cancelled, err := h.OperationUsecase.CancelOperation(c.Request.Context(), c.Param("id"), req.ActorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cancelled": cancelled})
}

func (h *OperationHandler) ExportOperations(c *gin.Context) {
	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filename, payload, err := h.OperationUsecase.ExportOperationsCSV(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", payload)
}

func (h *OperationHandler) GetAnalytics(c *gin.Context) {
	days, err := parseDays(c, 30)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analytics, err := h.OperationUsecase.GetAnalytics(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDomainAnalytics(analytics))
}

func (h *OperationHandler) GetDailyVolume(c *gin.Context) {
	days, err := parseDays(c, 7)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trend, err := h.OperationUsecase.GetDailyVolume(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trend": response.FromDomainDailyVolume(trend)})
}

func parseDays(c *gin.Context, fallback int) (int, error) {
	raw := c.Query("days")
	if raw == "" {
		return fallback, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return 0, fmt.Errorf("invalid days parameter %q", raw)
	}
	return days, nil
}

func parseFilters(c *gin.Context) (domain.OperationFilters, error) {
	var filters domain.OperationFilters

	for _, raw := range splitParam(c.Query("statuses")) {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			return filters, fmt.Errorf("unknown status %q", raw)
		}
		filters.Statuses = append(filters.Statuses, status)
	}

	for _, raw := range splitParam(c.Query("priorities")) {
		priority, ok := domain.ParsePriority(raw)
		if !ok {
			return filters, fmt.Errorf("unknown priority %q", raw)
		}
		filters.Priorities = append(filters.Priorities, priority)
	}

	filters.CollectorIDs = splitParam(c.Query("collectors"))
	filters.FXProviders = splitParam(c.Query("fx_providers"))

	if raw := c.Query("min_amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return filters, fmt.Errorf("invalid min_amount %q", raw)
		}
		filters.MinAmount = amount
	}
	if raw := c.Query("max_amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return filters, fmt.Errorf("invalid max_amount %q", raw)
		}
		filters.MaxAmount = amount
	}

	if raw := c.Query("date_from"); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			return filters, fmt.Errorf("invalid date_from %q", raw)
		}
		filters.DateFrom = from
	}
	if raw := c.Query("date_to"); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			return filters, fmt.Errorf("invalid date_to %q", raw)
		}
		filters.DateTo = to
	}

	return filters, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
