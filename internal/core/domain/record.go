package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerKind distinguishes the two record collections. The income and expense
// ledgers share one implementation; the kind only changes the wire-level label
// field name and user-facing wording.
type LedgerKind string

const (
	KindExpense LedgerKind = "expense"
	KindIncome  LedgerKind = "income"
)

// LabelField returns the JSON field name carrying the record label for this kind.
func (k LedgerKind) LabelField() string {
	if k == KindIncome {
		return "source"
	}
	return "category"
}

// Title returns the capitalized noun used in user-facing messages.
func (k LedgerKind) Title() string {
	if k == KindIncome {
		return "Income"
	}
	return "Expense"
}

// Record is one persisted income or expense entry. ID and Date are assigned by
// the store at creation time and never change; Amount is stored rounded to
// 2 decimal places. Records are immutable once persisted (create/read/delete only).
type Record struct {
	ID          int64           `json:"id"`
	Label       string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}
