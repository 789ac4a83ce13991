// Package store holds the record collections of the dashboard and persists them as a single
// JSON blob.
//
// Records are appended with a fresh id, collections are replaced wholesale by the demo seed
// and the reset, and every mutation is saved to the Backend (last write wins).
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/period"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("record not found")

// Options tune the derived records written by the store.
type Options struct {
	// Markup is applied to new contributions in the history point appended by
	// AddTransactions. Zero means wealthguard.DefaultMarkup.
	Markup float64
	// Locale of the history point labels.
	Locale period.Locale
	// Now is the store clock. Defaults to time.Now.
	Now    func() time.Time
	Logger zerolog.Logger
}

// Store is the record store. It is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	backend Backend
	opts    Options
	log     zerolog.Logger
	snap    wealthguard.Snapshot
}

// Open loads the snapshot saved in backend. An empty backend opens an empty store.
func Open(ctx context.Context, backend Backend, opts Options) (*Store, error) {
	if opts.Markup == 0 {
		opts.Markup = wealthguard.DefaultMarkup
	}
	if opts.Locale == "" {
		opts.Locale = period.DefaultLocale
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Store{
		backend: backend,
		opts:    opts,
		log:     opts.Logger.With().Str("component", "store").Logger(),
	}
	data, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", StorageKey, err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.snap); err != nil {
			return nil, fmt.Errorf("could not decode %s: %w", StorageKey, err)
		}
	}
	s.log.Debug().Int("transactions", len(s.snap.Transactions)).Int("history", len(s.snap.History)).Msg("store opened")
	return s, nil
}

// NewMemory returns an empty store that is not persisted beyond the process.
func NewMemory(opts Options) *Store {
	s, err := Open(context.Background(), &MemoryBackend{}, opts)
	if err != nil {
		// an empty memory backend cannot fail to load
		panic(err)
	}
	return s
}

// mutate applies f to the snapshot and saves the result. When saving fails the previous
// snapshot is restored.
func (s *Store) mutate(ctx context.Context, f func(snap *wealthguard.Snapshot)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := clone(s.snap)
	f(&s.snap)
	data, err := json.Marshal(s.snap)
	if err != nil {
		s.snap = prev
		return fmt.Errorf("could not encode %s: %w", StorageKey, err)
	}
	if err := s.backend.Save(ctx, data); err != nil {
		s.snap = prev
		return fmt.Errorf("could not save %s: %w", StorageKey, err)
	}
	return nil
}

func clone(s wealthguard.Snapshot) wealthguard.Snapshot {
	return wealthguard.Snapshot{
		Transactions: slices.Clone(s.Transactions),
		History:      slices.Clone(s.History),
		Prices:       maps.Clone(s.Prices),
		Properties:   slices.Clone(s.Properties),
		Incomes:      slices.Clone(s.Incomes),
		Expenses:     slices.Clone(s.Expenses),
	}
}

// Snapshot returns a copy of all collections.
func (s *Store) Snapshot() wealthguard.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.snap)
}

func (s *Store) Transactions() []wealthguard.Transaction { return s.Snapshot().Transactions }
func (s *Store) History() []wealthguard.HistoryPoint     { return s.Snapshot().History }
func (s *Store) Prices() map[string]wealthguard.Quote    { return s.Snapshot().Prices }
func (s *Store) Properties() []wealthguard.Property      { return s.Snapshot().Properties }
func (s *Store) Incomes() []wealthguard.PropertyIncome   { return s.Snapshot().Incomes }
func (s *Store) Expenses() []wealthguard.PropertyExpense { return s.Snapshot().Expenses }

// ActiveProperty returns the first registered property.
func (s *Store) ActiveProperty() (wealthguard.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.ActiveProperty()
}

// AddTransactions appends txs with fresh ids and appends the history point derived from the
// batch. It returns the stored transactions.
func (s *Store) AddTransactions(ctx context.Context, txs []wealthguard.Transaction) ([]wealthguard.Transaction, error) {
	added := make([]wealthguard.Transaction, 0, len(txs))
	for _, tx := range txs {
		tx.ID = uuid.NewString()
		added = append(added, tx)
	}
	label := period.Label(s.opts.Now(), s.opts.Locale)
	err := s.mutate(ctx, func(snap *wealthguard.Snapshot) {
		point := wealthguard.NextHistoryPoint(wealthguard.LastHistoryPoint(snap.History), added, label, s.opts.Markup)
		snap.Transactions = append(snap.Transactions, added...)
		snap.History = append(snap.History, point)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("count", len(added)).Msg("transactions added")
	return added, nil
}

// ClearTransactions removes all transactions and the history.
func (s *Store) ClearTransactions(ctx context.Context) error {
	return s.mutate(ctx, func(snap *wealthguard.Snapshot) {
		snap.Transactions = nil
		snap.History = nil
	})
}

// AddHistoryPoint appends p to the history.
func (s *Store) AddHistoryPoint(ctx context.Context, p wealthguard.HistoryPoint) error {
	return s.mutate(ctx, func(snap *wealthguard.Snapshot) {
		snap.History = append(snap.History, p)
	})
}

// SetPrices replaces all quotes.
func (s *Store) SetPrices(ctx context.Context, prices map[string]wealthguard.Quote) error {
	return s.mutate(ctx, func(snap *wealthguard.Snapshot) {
		snap.Prices = maps.Clone(prices)
	})
}

// AddProperty registers p with a fresh id.
func (s *Store) AddProperty(ctx context.Context, p wealthguard.Property) (wealthguard.Property, error) {
	p.ID = uuid.NewString()
	if err := s.mutate(ctx, func(snap *wealthguard.Snapshot) {
		snap.Properties = append(snap.Properties, p)
	}); err != nil {
		return wealthguard.Property{}, err
	}
	return p, nil
}

// UpdateProperty applies update to the property id. The id cannot be changed.
func (s *Store) UpdateProperty(ctx context.Context, id string, update func(p *wealthguard.Property)) error {
	found := false
	err := s.mutate(ctx, func(snap *wealthguard.Snapshot) {
		for i := range snap.Properties {
			if snap.Properties[i].ID == id {
				found = true
				update(&snap.Properties[i])
				snap.Properties[i].ID = id
			}
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("property %q: %w", id, ErrNotFound)
	}
	return nil
}

// AddIncomes appends incomes with fresh ids.
func (s *Store) AddIncomes(ctx context.Context, incomes []wealthguard.PropertyIncome) ([]wealthguard.PropertyIncome, error) {
	added := make([]wealthguard.PropertyIncome, 0, len(incomes))
	for _, i := range incomes {
		i.ID = uuid.NewString()
		added = append(added, i)
	}
	if err := s.mutate(ctx, func(snap *wealthguard.Snapshot) {
		snap.Incomes = append(snap.Incomes, added...)
	}); err != nil {
		return nil, err
	}
	return added, nil
}

// AddExpenses appends expenses with fresh ids.
func (s *Store) AddExpenses(ctx context.Context, expenses []wealthguard.PropertyExpense) ([]wealthguard.PropertyExpense, error) {
	added := make([]wealthguard.PropertyExpense, 0, len(expenses))
	for _, e := range expenses {
		e.ID = uuid.NewString()
		added = append(added, e)
	}
	if err := s.mutate(ctx, func(snap *wealthguard.Snapshot) {
		snap.Expenses = append(snap.Expenses, added...)
	}); err != nil {
		return nil, err
	}
	return added, nil
}

// LoadDemoData replaces the transactions, the history, the properties, the incomes and the
// expenses with the demo data set. Prices are kept.
func (s *Store) LoadDemoData(ctx context.Context) error {
	demo := Demo(s.opts.Locale)
	err := s.mutate(ctx, func(snap *wealthguard.Snapshot) {
		snap.Transactions = demo.Transactions
		snap.History = demo.History
		snap.Properties = demo.Properties
		snap.Incomes = demo.Incomes
		snap.Expenses = demo.Expenses
	})
	if err == nil {
		s.log.Info().Msg("demo data loaded")
	}
	return err
}

// ClearAll removes every record, prices included.
func (s *Store) ClearAll(ctx context.Context) error {
	err := s.mutate(ctx, func(snap *wealthguard.Snapshot) {
		*snap = wealthguard.Snapshot{}
	})
	if err == nil {
		s.log.Info().Msg("all data cleared")
	}
	return err
}
