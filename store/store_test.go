package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = func() time.Time { return time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC) }

func newTestStore(t *testing.T, backend Backend) *Store {
	t.Helper()
	s, err := Open(context.Background(), backend, Options{Now: testNow, Locale: period.Spanish})
	require.NoError(t, err)
	return s
}

func TestStore_AddTransactions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, &MemoryBackend{})

	added, err := s.AddTransactions(ctx, []wealthguard.Transaction{
		{Date: "2026-10", ETF: "MSCI World", Amount: 600},
		{Date: "2026-10", ETF: "MSCI Europe", Amount: 400},
	})
	require.NoError(t, err)
	require.Len(t, added, 2)
	assert.NotEmpty(t, added[0].ID)
	assert.NotEqual(t, added[0].ID, added[1].ID)

	_, err = s.AddTransactions(ctx, []wealthguard.Transaction{{Date: "2026-10", ETF: "MSCI World", Amount: 500}})
	require.NoError(t, err)

	assert.Len(t, s.Transactions(), 3)
	assert.Equal(t, []wealthguard.HistoryPoint{
		{Month: "oct 26", Value: 1020, Contributed: 1000},
		{Month: "oct 26", Value: 1530, Contributed: 1500},
	}, s.History())
}

func TestStore_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, &MemoryBackend{})
	seen := make(map[string]bool)
	for range 10 {
		added, err := s.AddIncomes(ctx, []wealthguard.PropertyIncome{{Amount: 1}, {Amount: 2}})
		require.NoError(t, err)
		for _, i := range added {
			assert.False(t, seen[i.ID], "id %q reused", i.ID)
			seen[i.ID] = true
		}
	}
	assert.Len(t, s.Incomes(), 20)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, &MemoryBackend{})
	require.NoError(t, s.SetPrices(ctx, map[string]wealthguard.Quote{"MSCI World": {Price: 100}}))

	prices := s.Prices()
	prices["MSCI World"] = wealthguard.Quote{Price: 1}
	assert.Equal(t, 100.0, s.Prices()["MSCI World"].Price)
}

func TestStore_SetPricesReplaces(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, &MemoryBackend{})
	require.NoError(t, s.SetPrices(ctx, map[string]wealthguard.Quote{"A": {Price: 1}, "B": {Price: 2}}))
	require.NoError(t, s.SetPrices(ctx, map[string]wealthguard.Quote{"A": {Price: 3}}))
	assert.Equal(t, map[string]wealthguard.Quote{"A": {Price: 3}}, s.Prices())
}

func TestStore_Property(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, &MemoryBackend{})

	_, ok := s.ActiveProperty()
	assert.False(t, ok)

	p, err := s.AddProperty(ctx, wealthguard.Property{Name: "Flat", CurrentValue: 100000})
	require.NoError(t, err)
	_, err = s.AddProperty(ctx, wealthguard.Property{Name: "Garage"})
	require.NoError(t, err)

	active, ok := s.ActiveProperty()
	require.True(t, ok)
	assert.Equal(t, p, active)

	require.NoError(t, s.UpdateProperty(ctx, p.ID, func(p *wealthguard.Property) {
		p.CurrentValue = 120000
		p.ID = "hijacked"
	}))
	active, _ = s.ActiveProperty()
	assert.Equal(t, 120000.0, active.CurrentValue)
	assert.Equal(t, p.ID, active.ID)

	err = s.UpdateProperty(ctx, "missing", func(p *wealthguard.Property) {})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_DemoAndClear(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, &MemoryBackend{})
	_, err := s.AddTransactions(ctx, []wealthguard.Transaction{{ETF: "MSCI World", Amount: 1}})
	require.NoError(t, err)

	require.NoError(t, s.LoadDemoData(ctx))
	snap := s.Snapshot()
	assert.Len(t, snap.Transactions, 4)
	assert.Len(t, snap.History, 6)
	assert.Equal(t, "ene 26", snap.History[0].Month)
	require.Len(t, snap.Properties, 1)
	assert.Len(t, snap.Incomes, 6)
	assert.Len(t, snap.Expenses, 4)

	summary := wealthguard.CalculatePropertySummary(snap.Properties[0], snap.Incomes, snap.Expenses)
	assert.Equal(t, 1.84, summary.AnnualYield)

	require.NoError(t, s.ClearTransactions(ctx))
	assert.Empty(t, s.Transactions())
	assert.Empty(t, s.History())
	assert.Len(t, s.Incomes(), 6)

	require.NoError(t, s.ClearAll(ctx))
	assert.Equal(t, wealthguard.Snapshot{}, s.Snapshot())
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	sqlite, err := OpenSQLite(ctx, t.TempDir()+"/wg.db")
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	backends := map[string]Backend{
		"file":   FileBackend{Dir: t.TempDir()},
		"sqlite": sqlite,
		"memory": &MemoryBackend{},
	}
	for name, backend := range backends {
		t.Run(name, func(t *testing.T) {
			s := newTestStore(t, backend)
			require.NoError(t, s.LoadDemoData(ctx))
			require.NoError(t, s.SetPrices(ctx, map[string]wealthguard.Quote{"MSCI World": {Price: 101.5, Currency: "EUR"}}))
			want := s.Snapshot()

			reopened := newTestStore(t, backend)
			assert.Equal(t, want, reopened.Snapshot())
		})
	}
}

func TestFileBackend_Missing(t *testing.T) {
	b := FileBackend{Dir: t.TempDir()}
	data, err := b.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, data)
}

type failingBackend struct{ MemoryBackend }

func (*failingBackend) Save(ctx context.Context, data []byte) error { return errors.New("disk full") }

func TestStore_FailedSaveRestores(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, &failingBackend{})
	_, err := s.AddTransactions(ctx, []wealthguard.Transaction{{ETF: "MSCI World", Amount: 1}})
	require.Error(t, err)
	assert.Empty(t, s.Transactions())
	assert.Empty(t, s.History())
}
