package repositories

import (
	"context"

	"github.com/pfin-labs/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepository defines persistence operations for one record collection.
// The repository owns identifier and timestamp assignment: SaveRecord stamps
// the next sequential id (never reused, even after deletes) and the current
// UTC instant, and rounds the amount to 2 decimal places before storing.
type LedgerRepository interface {
	// SaveRecord appends a new record and returns the stored value.
	SaveRecord(ctx context.Context, label string, amount decimal.Decimal, description string) (domain.Record, error)
	// DeleteRecord removes the record with the given id, preserving the order
	// of the remaining records, and returns the removed record.
	// Returns apperrors.ErrNotFound when no such id exists.
	DeleteRecord(ctx context.Context, id int64) (domain.Record, error)
	// FindRecordByID returns the record with the given id or apperrors.ErrNotFound.
	FindRecordByID(ctx context.Context, id int64) (domain.Record, error)
	// ListRecords returns a snapshot of all records in insertion order.
	ListRecords(ctx context.Context) ([]domain.Record, error)
	// ListRecordsByLabel returns the records whose label matches exactly
	// (case-sensitive), in insertion order.
	ListRecordsByLabel(ctx context.Context, label string) ([]domain.Record, error)
	// SumAmounts returns the sum of all record amounts, zero when empty.
	SumAmounts(ctx context.Context) (decimal.Decimal, error)
}
