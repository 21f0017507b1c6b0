package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alma-platform/alma-operations-service/internal/delivery/http/handlers"
)

// NewRouter wires every handler onto a gin engine with the default Logger
// and Recovery middleware.
func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	clientHandler *handlers.ClientHandler,
	operationHandler *handlers.OperationHandler) *gin.Engine {

	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", authHandler.Login)
		api.GET("/users", userHandler.ListUsersByRole)

		api.GET("/clients", clientHandler.ListClients)
		api.POST("/clients", clientHandler.CreateClient)
		api.GET("/clients/:id", clientHandler.GetClient)

		api.POST("/operations", operationHandler.CreateOperation)
		api.GET("/operations", operationHandler.ListOperations)
		api.GET("/operations/export", operationHandler.ExportOperations)
		api.GET("/operations/code/:code", operationHandler.GetOperationByCode)
		api.GET("/operations/:id/logs", operationHandler.GetOperationLogs)
		api.PATCH("/operations/:id/status", operationHandler.UpdateStatus)
		api.POST("/operations/:id/cancel", operationHandler.CancelOperation)

		api.GET("/analytics", operationHandler.GetAnalytics)
		api.GET("/analytics/daily-volume", operationHandler.GetDailyVolume)
	}

	return r
}
