package handlers

import (
	"net/http"

	portssvc "github.com/pfin-labs/finance_tracker_app/internal/core/ports/services"
	"github.com/pfin-labs/finance_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces. The same handlers are mounted both at the root and under /api,
// since browser clients call the prefixed paths.
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	for _, rg := range []*gin.RouterGroup{r.Group(""), r.Group("/api")} {
		registerHealthRoutes(rg)
		registerDashboardRoutes(rg, services)
		registerExpenseRoutes(rg, services.Expense)
		registerIncomeRoutes(rg, services.Income)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Route not found"))
	})
}
