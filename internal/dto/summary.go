package dto

import (
	"github.com/pfin-labs/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryResponse is the wire representation of the dashboard summary.
// Monetary fields are plain JSON numbers rounded to 2 decimal places; the
// per-label maps always serialize as objects, {} when empty.
type SummaryResponse struct {
	TotalIncome        float64            `json:"totalIncome"`
	TotalExpenses      float64            `json:"totalExpenses"`
	Balance            float64            `json:"balance"`
	SavingsRate        float64            `json:"savingsRate"`
	ExpensesByCategory map[string]float64 `json:"expensesByCategory"`
	IncomeBySource     map[string]float64 `json:"incomeBySource"`
	TransactionCount   int                `json:"transactionCount"`
}

// ToSummaryResponse converts a domain summary to its wire shape.
func ToSummaryResponse(summary *domain.Summary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:        summary.TotalIncome.InexactFloat64(),
		TotalExpenses:      summary.TotalExpenses.InexactFloat64(),
		Balance:            summary.Balance.InexactFloat64(),
		SavingsRate:        summary.SavingsRate.InexactFloat64(),
		ExpensesByCategory: toAmountMap(summary.ExpensesByCategory),
		IncomeBySource:     toAmountMap(summary.IncomeBySource),
		TransactionCount:   summary.TransactionCount,
	}
}

func toAmountMap(amounts map[string]decimal.Decimal) map[string]float64 {
	out := make(map[string]float64, len(amounts))
	for label, amount := range amounts {
		out[label] = amount.InexactFloat64()
	}
	return out
}
