package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pfin-labs/finance_tracker_app/internal/apperrors"
	"github.com/pfin-labs/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/pfin-labs/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/pfin-labs/finance_tracker_app/internal/core/ports/services"
	"github.com/pfin-labs/finance_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ledgerService implements the LedgerSvc interface. One implementation serves
// both ledgers; the kind only flavors log output, the backing repository
// determines which collection is touched.
type ledgerService struct {
	BaseService
	kind domain.LedgerKind
	repo portsrepo.LedgerRepository
}

// NewLedgerService creates a ledger service of the given kind over the
// provided repository.
func NewLedgerService(kind domain.LedgerKind, repo portsrepo.LedgerRepository) portssvc.LedgerSvc {
	return &ledgerService{
		kind: kind,
		repo: repo,
	}
}

// Ensure ledgerService implements the LedgerSvc interface.
var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) AddRecord(ctx context.Context, req dto.CreateRecordRequest) (*domain.Record, error) {
	if req.Amount.Cmp(decimal.Zero) <= 0 {
		s.LogDebug(ctx, "Rejected non-positive amount",
			slog.String("ledger", string(s.kind)),
			slog.String("amount", req.Amount.String()))
		return nil, apperrors.ErrAmountNotPositive
	}
	if req.Label == "" {
		s.LogDebug(ctx, "Rejected empty label",
			slog.String("ledger", string(s.kind)))
		return nil, apperrors.ErrLabelRequired
	}

	record, err := s.repo.SaveRecord(ctx, req.Label, req.Amount, req.Description)
	if err != nil {
		s.LogError(ctx, err, "Failed to save record",
			slog.String("ledger", string(s.kind)),
			slog.String("label", req.Label))
		return nil, fmt.Errorf("failed to save %s record: %w", s.kind, err)
	}

	s.LogInfo(ctx, "Record created successfully",
		slog.String("ledger", string(s.kind)),
		slog.Int64("record_id", record.ID),
		slog.String("label", record.Label))
	return &record, nil
}

func (s *ledgerService) DeleteRecord(ctx context.Context, id int64) (*domain.Record, error) {
	record, err := s.repo.DeleteRecord(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete record",
				slog.String("ledger", string(s.kind)),
				slog.Int64("record_id", id))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Record deleted successfully",
		slog.String("ledger", string(s.kind)),
		slog.Int64("record_id", id))
	return &record, nil
}

func (s *ledgerService) GetRecordByID(ctx context.Context, id int64) (*domain.Record, error) {
	record, err := s.repo.FindRecordByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find record by ID",
				slog.String("ledger", string(s.kind)),
				slog.Int64("record_id", id))
		}
		return nil, err
	}
	return &record, nil
}

func (s *ledgerService) ListRecords(ctx context.Context) ([]domain.Record, error) {
	records, err := s.repo.ListRecords(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records",
			slog.String("ledger", string(s.kind)))
		return nil, fmt.Errorf("failed to list %s records: %w", s.kind, err)
	}
	if records == nil {
		return []domain.Record{}, nil
	}
	return records, nil
}

func (s *ledgerService) ListRecordsByLabel(ctx context.Context, label string) ([]domain.Record, error) {
	records, err := s.repo.ListRecordsByLabel(ctx, label)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records by label",
			slog.String("ledger", string(s.kind)),
			slog.String("label", label))
		return nil, fmt.Errorf("failed to list %s records by label: %w", s.kind, err)
	}
	if records == nil {
		return []domain.Record{}, nil
	}
	return records, nil
}

func (s *ledgerService) TotalAmount(ctx context.Context) (decimal.Decimal, error) {
	total, err := s.repo.SumAmounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum record amounts",
			slog.String("ledger", string(s.kind)))
		return decimal.Zero, fmt.Errorf("failed to total %s records: %w", s.kind, err)
	}
	return total, nil
}
