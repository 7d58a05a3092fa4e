package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pfin-labs/finance_tracker_app/internal/apperrors"
	"github.com/pfin-labs/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/pfin-labs/finance_tracker_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// LedgerStore is an in-memory implementation of repositories.LedgerRepository.
// It holds one ordered record collection behind a mutex so concurrent adds and
// deletes are serialized; reads hand out defensive copies.
//
// Ids start at 1 and only ever move forward. Deleting a record does not rewind
// the counter, so a freed id is never reassigned.
type LedgerStore struct {
	mu      sync.RWMutex
	records []domain.Record
	nextID  int64
}

// NewLedgerStore creates an empty store.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		records: make([]domain.Record, 0),
		nextID:  1,
	}
}

// SaveRecord assigns the next sequential id and the current UTC instant,
// rounds the amount to 2 decimal places (half away from zero) and appends the
// record. The caller receives the stored record by value.
func (s *LedgerStore) SaveRecord(ctx context.Context, label string, amount decimal.Decimal, description string) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := domain.Record{
		ID:          s.nextID,
		Label:       label,
		Amount:      amount.Round(2),
		Description: description,
		Date:        time.Now().UTC(),
	}
	s.nextID++
	s.records = append(s.records, record)
	return record, nil
}

// DeleteRecord removes the record with the given id, keeping the remaining
// records in insertion order, and returns the removed record.
func (s *LedgerStore) DeleteRecord(ctx context.Context, id int64) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, record := range s.records {
		if record.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return record, nil
		}
	}
	return domain.Record{}, apperrors.ErrNotFound
}

// FindRecordByID returns the record with the given id.
func (s *LedgerStore) FindRecordByID(ctx context.Context, id int64) (domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.ID == id {
			return record, nil
		}
	}
	return domain.Record{}, apperrors.ErrNotFound
}

// ListRecords returns a copy of the collection in insertion order so external
// code cannot mutate store internals through the returned slice.
func (s *LedgerStore) ListRecords(ctx context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]domain.Record, len(s.records))
	copy(copied, s.records)
	return copied, nil
}

// ListRecordsByLabel returns the records whose label matches exactly,
// case-sensitive, in insertion order.
func (s *LedgerStore) ListRecordsByLabel(ctx context.Context, label string) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Record, 0)
	for _, record := range s.records {
		if record.Label == label {
			result = append(result, record)
		}
	}
	return result, nil
}

// SumAmounts returns the sum of all record amounts, decimal.Zero when empty.
func (s *LedgerStore) SumAmounts(ctx context.Context) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, record := range s.records {
		total = total.Add(record.Amount)
	}
	return total, nil
}

// Compile-time check: LedgerStore implements the LedgerRepository interface.
var _ portsrepo.LedgerRepository = (*LedgerStore)(nil)
