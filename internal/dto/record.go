package dto

import (
	"time"

	"github.com/pfin-labs/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecordRequest is the validated, kind-neutral input handed to a ledger
// service. Handlers build it after binding the wire-level shape (which names
// the label field "category" or "source" depending on the ledger).
type CreateRecordRequest struct {
	Label       string
	Amount      decimal.Decimal
	Description string
}

// CreateExpenseRequest is the wire shape for POST /expenses. Amount is a
// pointer so a missing field is distinguishable from zero at the validation
// boundary.
type CreateExpenseRequest struct {
	Category    string   `json:"category"`
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`
}

// CreateIncomeRequest is the wire shape for POST /income.
type CreateIncomeRequest struct {
	Source      string   `json:"source"`
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`
}

// ExpenseResponse is the wire representation of an expense record. Amount is
// a plain JSON number already rounded to 2 decimal places.
type ExpenseResponse struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// IncomeResponse is the wire representation of an income record.
type IncomeResponse struct {
	ID          int64   `json:"id"`
	Source      string  `json:"source"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// ToExpenseResponse converts a domain record to its expense wire shape.
func ToExpenseResponse(record *domain.Record) ExpenseResponse {
	return ExpenseResponse{
		ID:          record.ID,
		Category:    record.Label,
		Amount:      record.Amount.InexactFloat64(),
		Description: record.Description,
		Date:        record.Date.UTC().Format(time.RFC3339),
	}
}

// ToIncomeResponse converts a domain record to its income wire shape.
func ToIncomeResponse(record *domain.Record) IncomeResponse {
	return IncomeResponse{
		ID:          record.ID,
		Source:      record.Label,
		Amount:      record.Amount.InexactFloat64(),
		Description: record.Description,
		Date:        record.Date.UTC().Format(time.RFC3339),
	}
}

// ToRecordResponse converts a record according to the ledger kind.
func ToRecordResponse(kind domain.LedgerKind, record *domain.Record) any {
	if kind == domain.KindIncome {
		return ToIncomeResponse(record)
	}
	return ToExpenseResponse(record)
}

// ToRecordListResponse converts a snapshot according to the ledger kind.
// It always returns a non-nil slice so empty lists serialize as [].
func ToRecordListResponse(kind domain.LedgerKind, records []domain.Record) any {
	if kind == domain.KindIncome {
		out := make([]IncomeResponse, len(records))
		for i := range records {
			out[i] = ToIncomeResponse(&records[i])
		}
		return out
	}
	out := make([]ExpenseResponse, len(records))
	for i := range records {
		out[i] = ToExpenseResponse(&records[i])
	}
	return out
}
