// Package quotes refreshes the market quotes of the instruments.
package quotes

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/wealthguard"
)

var (
	// ErrNoQuote is returned by a provider that knows no quote for a symbol. The instrument
	// is then left out of the refresh instead of being replaced by a placeholder.
	ErrNoQuote = errors.New("no quote")
	// ErrUnavailable is returned when a whole refresh fails.
	ErrUnavailable = errors.New("quotes unavailable")
)

// Provider looks up the latest quote of a ticker symbol. LastUpdated is set by the Refresher.
type Provider interface {
	Name() string
	Quote(ctx context.Context, symbol string) (wealthguard.Quote, error)
}

// Static serves fixed quotes by symbol. Unknown symbols fail.
type Static map[string]wealthguard.Quote

func (Static) Name() string { return "static" }

func (s Static) Quote(ctx context.Context, symbol string) (wealthguard.Quote, error) {
	q, ok := s[symbol]
	if !ok {
		return wealthguard.Quote{}, fmt.Errorf("unknown symbol %q", symbol)
	}
	if q.Currency == "" {
		q.Currency = wealthguard.DefaultCurrency
	}
	return q, nil
}
