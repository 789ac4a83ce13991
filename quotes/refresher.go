package quotes

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/etnz/wealthguard"
	"github.com/rs/zerolog"
)

// TimeFormat is the format of Quote.LastUpdated.
const TimeFormat = time.TimeOnly

// Refresher fetches the quotes of a set of instruments in parallel.
type Refresher struct {
	Provider Provider
	// Now is the clock stamping the quotes. Defaults to time.Now.
	Now func() time.Time
	// Timeout bounds each lookup, 0 for none.
	Timeout time.Duration
	Logger  zerolog.Logger
}

// NewRefresher returns a refresher reading from p.
func NewRefresher(p Provider, logger zerolog.Logger) *Refresher {
	return &Refresher{
		Provider: p,
		Now:      time.Now,
		Logger:   logger.With().Str("component", "quotes").Logger(),
	}
}

// placeholder replaces the quote of an instrument whose lookup failed.
func placeholder(at string) wealthguard.Quote {
	return wealthguard.Quote{Currency: wealthguard.DefaultCurrency, LastUpdated: at}
}

// GetPrices returns the quote of every instrument, by instrument name.
//
// Each instrument is looked up independently: a failed lookup is logged and replaced by a
// zero quote, it never fails the batch. A lookup running past r.Timeout is a failed lookup. Instruments the provider has no quote for are left
// out. The batch fails as a whole, with ErrUnavailable and no partial result, only when
// there is no provider or when ctx is done.
func (r *Refresher) GetPrices(ctx context.Context, instruments wealthguard.Instruments) (map[string]wealthguard.Quote, error) {
	if r.Provider == nil {
		return nil, fmt.Errorf("%w: no provider configured", ErrUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		prices = make(map[string]wealthguard.Quote, len(instruments))
	)
	for _, inst := range instruments {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q, err := r.lookup(ctx, inst.Symbol)
			at := now().Format(TimeFormat)
			switch {
			case errors.Is(err, ErrNoQuote):
				r.Logger.Warn().Str("instrument", inst.Name).Str("symbol", inst.Symbol).Msg("no quote")
				return
			case err != nil:
				r.Logger.Warn().Err(err).Str("instrument", inst.Name).Str("symbol", inst.Symbol).Msg("quote lookup failed")
				q = placeholder(at)
			default:
				if q.Currency == "" {
					q.Currency = wealthguard.DefaultCurrency
				}
				q.LastUpdated = at
			}
			mu.Lock()
			prices[inst.Name] = q
			mu.Unlock()
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	r.Logger.Info().Str("provider", r.Provider.Name()).Int("count", len(prices)).Msg("prices refreshed")
	return prices, nil
}

// lookup asks the provider for the quote of symbol within r.Timeout.
func (r *Refresher) lookup(ctx context.Context, symbol string) (wealthguard.Quote, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	return r.Provider.Quote(ctx, symbol)
}
