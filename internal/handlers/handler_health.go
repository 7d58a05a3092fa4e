package handlers

import (
	"net/http"

	"github.com/pfin-labs/finance_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of the server
// @Description get the status of the server
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Message: "Personal Finance Tracker API running",
	})
}

// registerHealthRoutes registers the health check route.
func registerHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", getHealth)
}
