package domain

import "github.com/shopspring/decimal"

// Summary is a point-in-time aggregation over one income snapshot and one
// expense snapshot. All monetary fields are rounded to 2 decimal places.
type Summary struct {
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	Balance            decimal.Decimal
	SavingsRate        decimal.Decimal
	ExpensesByCategory map[string]decimal.Decimal
	IncomeBySource     map[string]decimal.Decimal
	TransactionCount   int
}
