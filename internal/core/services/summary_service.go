package services

import (
	"context"

	"github.com/pfin-labs/finance_tracker_app/internal/core/domain"
	portssvc "github.com/pfin-labs/finance_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// summaryService implements the SummarySvc interface. It holds no state and
// recomputes every summary from the snapshots it is handed, so the result
// always reflects the ledgers at call time.
type summaryService struct {
	BaseService
}

// NewSummaryService creates a new summary service.
func NewSummaryService() portssvc.SummarySvc {
	return &summaryService{}
}

// Ensure summaryService implements the SummarySvc interface.
var _ portssvc.SummarySvc = (*summaryService)(nil)

func (s *summaryService) Summarize(ctx context.Context, income []domain.Record, expenses []domain.Record) (*domain.Summary, error) {
	totalIncome, incomeBySource := sumByLabel(income)
	totalExpenses, expensesByCategory := sumByLabel(expenses)
	balance := totalIncome.Sub(totalExpenses)

	// Savings rate is defined as 0 when there is no income; dividing would
	// be the only failure mode of this computation.
	savingsRate := decimal.Zero
	if totalIncome.IsPositive() {
		savingsRate = balance.Div(totalIncome).Mul(oneHundred).Round(2)
	}

	return &domain.Summary{
		TotalIncome:        totalIncome.Round(2),
		TotalExpenses:      totalExpenses.Round(2),
		Balance:            balance.Round(2),
		SavingsRate:        savingsRate,
		ExpensesByCategory: expensesByCategory,
		IncomeBySource:     incomeBySource,
		TransactionCount:   len(income) + len(expenses),
	}, nil
}

// sumByLabel totals a snapshot and groups the amounts by label in one pass.
func sumByLabel(records []domain.Record) (decimal.Decimal, map[string]decimal.Decimal) {
	total := decimal.Zero
	byLabel := make(map[string]decimal.Decimal, len(records))
	for _, record := range records {
		total = total.Add(record.Amount)
		byLabel[record.Label] = byLabel[record.Label].Add(record.Amount)
	}
	return total, byLabel
}
