package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pfin-labs/finance_tracker_app/internal/adapters/storage/memory"
	"github.com/pfin-labs/finance_tracker_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRecord_AssignsSequentialIDsAndDate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLedgerStore()

	first, err := store.SaveRecord(ctx, "Rent", decimal.NewFromInt(1000), "monthly rent")
	require.NoError(t, err)
	second, err := store.SaveRecord(ctx, "Groceries", decimal.NewFromInt(300), "")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, "Rent", first.Label)
	assert.Equal(t, "monthly rent", first.Description)
	assert.WithinDuration(t, time.Now().UTC(), first.Date, time.Second)
	assert.Equal(t, time.UTC, first.Date.Location())
}

func TestSaveRecord_RoundsAmountToTwoDecimals(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLedgerStore()

	up, err := store.SaveRecord(ctx, "Food", decimal.NewFromFloat(50.999), "")
	require.NoError(t, err)
	down, err := store.SaveRecord(ctx, "Food", decimal.NewFromFloat(50.001), "")
	require.NoError(t, err)

	assert.True(t, up.Amount.Equal(decimal.NewFromInt(51)), "got %s", up.Amount)
	assert.True(t, down.Amount.Equal(decimal.NewFromInt(50)), "got %s", down.Amount)
}

func TestDeleteRecord_NeverReusesFreedIDs(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLedgerStore()

	_, err := store.SaveRecord(ctx, "A", decimal.NewFromInt(1), "")
	require.NoError(t, err)
	second, err := store.SaveRecord(ctx, "B", decimal.NewFromInt(2), "")
	require.NoError(t, err)

	_, err = store.DeleteRecord(ctx, second.ID)
	require.NoError(t, err)

	third, err := store.SaveRecord(ctx, "C", decimal.NewFromInt(3), "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestDeleteRecord_RemovesExactRecordPreservingOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLedgerStore()

	for _, label := range []string{"A", "B", "C"} {
		_, err := store.SaveRecord(ctx, label, decimal.NewFromInt(10), "")
		require.NoError(t, err)
	}

	removed, err := store.DeleteRecord(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "B", removed.Label)

	records, err := store.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, int64(3), records[1].ID)
}

func TestDeleteRecord_NotFoundLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLedgerStore()

	record, err := store.SaveRecord(ctx, "A", decimal.NewFromInt(10), "")
	require.NoError(t, err)

	_, err = store.DeleteRecord(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Deleting an id twice fails the second time.
	_, err = store.DeleteRecord(ctx, record.ID)
	require.NoError(t, err)
	_, err = store.DeleteRecord(ctx, record.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	records, err := store.ListRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListRecords_ReturnsDefensiveCopy(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLedgerStore()

	_, err := store.SaveRecord(ctx, "A", decimal.NewFromInt(10), "")
	require.NoError(t, err)

	snapshot, err := store.ListRecords(ctx)
	require.NoError(t, err)
	snapshot[0].Label = "mutated"
	snapshot[0].Amount = decimal.NewFromInt(-1)

	records, err := store.ListRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", records[0].Label)
	assert.True(t, records[0].Amount.Equal(decimal.NewFromInt(10)))
}

func TestListRecordsByLabel_ExactCaseSensitiveMatch(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLedgerStore()

	_, err := store.SaveRecord(ctx, "Food", decimal.NewFromInt(50), "")
	require.NoError(t, err)
	_, err = store.SaveRecord(ctx, "food", decimal.NewFromInt(40), "")
	require.NoError(t, err)
	_, err = store.SaveRecord(ctx, "Food", decimal.NewFromInt(35), "")
	require.NoError(t, err)

	records, err := store.ListRecordsByLabel(ctx, "Food")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, int64(3), records[1].ID)

	none, err := store.ListRecordsByLabel(ctx, "FOOD")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSumAmounts(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLedgerStore()

	total, err := store.SumAmounts(ctx)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	_, err = store.SaveRecord(ctx, "A", decimal.NewFromFloat(10.25), "")
	require.NoError(t, err)
	_, err = store.SaveRecord(ctx, "B", decimal.NewFromFloat(5.50), "")
	require.NoError(t, err)

	total, err = store.SumAmounts(ctx)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromFloat(15.75)), "got %s", total)
}

func TestSaveRecord_ConcurrentAddsAssignUniqueIDs(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLedgerStore()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := store.SaveRecord(ctx, "Concurrent", decimal.NewFromInt(1), "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	records, err := store.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, workers)

	seen := make(map[int64]bool, workers)
	for _, record := range records {
		assert.False(t, seen[record.ID], "id %d assigned twice", record.ID)
		seen[record.ID] = true
	}
}
