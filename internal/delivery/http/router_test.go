package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alma-platform/alma-operations-service/internal/delivery/http/handlers"
	"github.com/alma-platform/alma-operations-service/internal/domain"
	"github.com/alma-platform/alma-operations-service/internal/infrastructure/memory"
	"github.com/alma-platform/alma-operations-service/internal/usecase"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clients := memory.NewMemoryClientRepository()
	operations := memory.NewMemoryOperationRepository(clients)
	users := memory.NewMemoryUserRepository()
	require.NoError(t, memory.SeedSampleData(users, clients))

	userUC := usecase.NewDefaultUserUsecase(users)
	clientUC := usecase.NewDefaultClientUsecase(clients)
	operationUC := usecase.NewDefaultOperationUsecase(operations, clients, nil, nil, "operation-events", nil)

	return NewRouter(
		handlers.NewAuthHandler(userUC),
		handlers.NewUserHandler(userUC),
		handlers.NewClientHandler(clientUC),
		handlers.NewOperationHandler(operationUC),
	)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func firstClientID(t *testing.T, router *gin.Engine) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/clients", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listing struct {
		Clients []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"clients"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.NotEmpty(t, listing.Clients)
	return listing.Clients[0].ID
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "admin",
		"password": "admin123",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var user struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin", user.Role)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestLogin_SameResponseForUnknownUserAndBadPassword(t *testing.T) {
	router := newTestRouter(t)

	unknown := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "ghost",
		"password": "admin123",
	})
	badPass := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "admin",
		"password": "nope",
	})

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, badPass.Code)
	assert.Equal(t, unknown.Body.String(), badPass.Body.String())
}

func TestListUsersByRole(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/users?role=collector", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listing struct {
		Users []struct {
			Role string `json:"role"`
		} `json:"users"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.NotEmpty(t, listing.Users)
	for _, u := range listing.Users {
		assert.Equal(t, "collector", u.Role)
	}

	bad := doJSON(t, router, http.MethodGet, "/api/v1/users?role=wizard", nil)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestCreateOperationEndpoint(t *testing.T) {
	router := newTestRouter(t)
	clientID := firstClientID(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/operations", gin.H{
		"client_id":      clientID,
		"client_name":    "David Chen",
		"amount":         "10000",
		"usdt_wallet":    "T123456789012345678901234567890123",
		"pickup_address": "12 Harbor Street",
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		Code   string `json:"code"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Regexp(t, `^MSB-\d{4}-\d{2}-\d{2}-\d{3}$`, created.Code)
	assert.Equal(t, "Pending", created.Status)
}

func TestCreateOperationEndpoint_ValidationErrors(t *testing.T) {
	router := newTestRouter(t)
	clientID := firstClientID(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/operations", gin.H{
		"client_id":      clientID,
		"client_name":    "",
		"amount":         "10",
		"usdt_wallet":    "bogus",
		"pickup_address": "",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Errors, 4)
	assert.Contains(t, body.Errors, "Amount must be at least $100")
}

func TestUpdateStatusEndpoint_Conflict(t *testing.T) {
	router := newTestRouter(t)
	clientID := firstClientID(t, router)

	created := doJSON(t, router, http.MethodPost, "/api/v1/operations", gin.H{
		"client_id":      clientID,
		"client_name":    "David Chen",
		"amount":         "500",
		"usdt_wallet":    "T123456789012345678901234567890123",
		"pickup_address": "12 Harbor Street",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	var operation struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &operation))

	rec := doJSON(t, router, http.MethodPatch,
		fmt.Sprintf("/api/v1/operations/%s/status", operation.ID),
		gin.H{"status": "Completed"})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCancelEndpoint_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/operations/no-such-id/cancel", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOperationLogsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	clientID := firstClientID(t, router)

	created := doJSON(t, router, http.MethodPost, "/api/v1/operations", gin.H{
		"client_id":      clientID,
		"client_name":    "David Chen",
		"amount":         "500",
		"usdt_wallet":    "T123456789012345678901234567890123",
		"pickup_address": "12 Harbor Street",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	var operation struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &operation))

	rec := doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/api/v1/operations/%s/logs", operation.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Logs []struct {
			Action string `json:"action"`
		} `json:"logs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Logs, 1)
	assert.Equal(t, domain.ActionOperationCreated, body.Logs[0].Action)

	missing := doJSON(t, router, http.MethodGet, "/api/v1/operations/no-such-id/logs", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestExportEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/operations/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Regexp(t, `attachment; filename="operations_\d{8}\.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "Operation ID,Client,Amount,Status")
}

func TestAnalyticsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/analytics?days=30", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var analytics struct {
		TotalOperations int64   `json:"total_operations"`
		CompletionRate  float64 `json:"completion_rate"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analytics))
	assert.Zero(t, analytics.TotalOperations)
	assert.Zero(t, analytics.CompletionRate)

	bad := doJSON(t, router, http.MethodGet, "/api/v1/analytics?days=-2", nil)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestListOperationsEndpoint_BadFilter(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/operations?statuses=Teleported", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
