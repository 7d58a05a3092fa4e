package handlers

import (
	"log/slog"
	"net/http"

	"github.com/pfin-labs/finance_tracker_app/internal/core/domain"
	portssvc "github.com/pfin-labs/finance_tracker_app/internal/core/ports/services"
	"github.com/pfin-labs/finance_tracker_app/internal/dto"
	"github.com/pfin-labs/finance_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// registerIncomeRoutes registers routes related to the income ledger.
func registerIncomeRoutes(rg *gin.RouterGroup, svc portssvc.LedgerSvc) {
	h := newLedgerHandler(domain.KindIncome, svc)

	income := rg.Group("/income")
	{
		income.POST("", h.createIncome)
		income.GET("", h.listRecords)
		income.GET("/:id", h.getRecord)
		income.DELETE("/:id", h.deleteRecord)
	}
}

// createIncome godoc
// @Summary Create a new income entry
// @Description Records a new income entry with a source, a positive amount and an optional description
// @Tags income
// @Accept json
// @Produce json
// @Param income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields or non-positive amount"
// @Router /income [post]
func (h *ledgerHandler) createIncome(c *gin.Context) {
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON for CreateIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindErrorMessage(err)))
		return
	}

	h.createRecord(c, req.Source, req.Amount, req.Description)
}
