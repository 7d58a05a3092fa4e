package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/pfin-labs/finance_tracker_app/internal/core/ports/services"
	"github.com/pfin-labs/finance_tracker_app/internal/dto"
	"github.com/pfin-labs/finance_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for the aggregated dashboard view.
type dashboardHandler struct {
	incomeSvc  portssvc.LedgerSvc
	expenseSvc portssvc.LedgerSvc
	summarySvc portssvc.SummarySvc
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(incomeSvc, expenseSvc portssvc.LedgerSvc, summarySvc portssvc.SummarySvc) *dashboardHandler {
	return &dashboardHandler{
		incomeSvc:  incomeSvc,
		expenseSvc: expenseSvc,
		summarySvc: summarySvc,
	}
}

// registerDashboardRoutes registers the dashboard summary route.
func registerDashboardRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newDashboardHandler(services.Income, services.Expense, services.Summary)
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Get the dashboard summary
// @Description Computes totals, balance, savings rate and per-label breakdowns over the current ledgers
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to build dashboard summary"
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	income, err := h.incomeSvc.ListRecords(c.Request.Context())
	if err != nil {
		logger.Error("Failed to snapshot income ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to build dashboard summary"))
		return
	}

	expenses, err := h.expenseSvc.ListRecords(c.Request.Context())
	if err != nil {
		logger.Error("Failed to snapshot expense ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to build dashboard summary"))
		return
	}

	summary, err := h.summarySvc.Summarize(c.Request.Context(), income, expenses)
	if err != nil {
		logger.Error("Failed to summarize ledgers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to build dashboard summary"))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Data:    dto.ToSummaryResponse(summary),
	})
}
