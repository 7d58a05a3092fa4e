package services

import (
	"context"

	"github.com/pfin-labs/finance_tracker_app/internal/core/domain"
	"github.com/pfin-labs/finance_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvc defines the operations of one labeled-amount ledger. The income
// and expense ledgers are two instances of this interface backed by separate
// collections.
type LedgerSvc interface {
	// AddRecord validates and persists a new record, returning the stored
	// value with its assigned id and date. Fails with
	// apperrors.ErrAmountNotPositive or apperrors.ErrLabelRequired (both
	// matching apperrors.ErrValidation) without mutating the collection.
	AddRecord(ctx context.Context, req dto.CreateRecordRequest) (*domain.Record, error)
	// DeleteRecord removes and returns the record with the given id, or
	// fails with apperrors.ErrNotFound leaving the collection unchanged.
	DeleteRecord(ctx context.Context, id int64) (*domain.Record, error)
	// GetRecordByID returns the record with the given id or apperrors.ErrNotFound.
	GetRecordByID(ctx context.Context, id int64) (*domain.Record, error)
	// ListRecords returns all records in insertion order.
	ListRecords(ctx context.Context) ([]domain.Record, error)
	// ListRecordsByLabel returns records with an exactly matching label.
	ListRecordsByLabel(ctx context.Context, label string) ([]domain.Record, error)
	// TotalAmount returns the sum of all record amounts.
	TotalAmount(ctx context.Context) (decimal.Decimal, error)
}

// SummarySvc computes dashboard summaries over ledger snapshots.
type SummarySvc interface {
	// Summarize is a pure function of the two snapshots; empty inputs are
	// valid and yield an all-zero summary.
	Summarize(ctx context.Context, income []domain.Record, expenses []domain.Record) (*domain.Summary, error)
}

// ServiceContainer groups the services the HTTP layer depends on, injected at
// startup so the stores stay explicitly owned and resettable in tests.
type ServiceContainer struct {
	Expense LedgerSvc
	Income  LedgerSvc
	Summary SummarySvc
}
