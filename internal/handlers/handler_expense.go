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

// registerExpenseRoutes registers routes related to the expense ledger.
func registerExpenseRoutes(rg *gin.RouterGroup, svc portssvc.LedgerSvc) {
	h := newLedgerHandler(domain.KindExpense, svc)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listRecords)
		expenses.GET("/:id", h.getRecord)
		expenses.DELETE("/:id", h.deleteRecord)
	}
}

// createExpense godoc
// @Summary Create a new expense
// @Description Records a new expense with a category, a positive amount and an optional description
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields or non-positive amount"
// @Router /expenses [post]
func (h *ledgerHandler) createExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindErrorMessage(err)))
		return
	}

	h.createRecord(c, req.Category, req.Amount, req.Description)
}
