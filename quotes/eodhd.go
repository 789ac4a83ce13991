package quotes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/wealthguard"
)

// DefaultEODHDURL is the EODHD live (delayed) prices endpoint.
const DefaultEODHDURL = "https://eodhd.com/api/real-time"

// EnvEODHDKey is the environment variable holding the EODHD API key.
const EnvEODHDKey = "EODHD_API_KEY"

/*
	{
	    "code": "IWDA.AS",
	    "timestamp": 1760428800,
	    "close": 104.62,
	    "previousClose": 105,
	    "change": -0.38,
	    "change_p": -0.3619
	}
*/

// EODHD reads quotes from eodhd.com. Symbols use the Yahoo suffixes, Xetra ones (.DE) are
// translated to the EODHD exchange code.
type EODHD struct {
	APIKey  string
	BaseURL string // defaults to DefaultEODHDURL
	Client  *http.Client
}

func (e *EODHD) Name() string { return "eodhd" }

func (e *EODHD) Quote(ctx context.Context, symbol string) (wealthguard.Quote, error) {
	if e.APIKey == "" {
		return wealthguard.Quote{}, errors.New("missing EODHD API key, see " + EnvEODHDKey)
	}
	base := e.BaseURL
	if base == "" {
		base = DefaultEODHDURL
	}
	client := e.Client
	if client == nil {
		client = http.DefaultClient
	}
	addr := fmt.Sprintf("%s/%s?api_token=%s&fmt=json", base, url.PathEscape(eodhdSymbol(symbol)), url.QueryEscape(e.APIKey))

	var jobj any
	if err := jwget(ctx, client, addr, &jobj); err != nil {
		return wealthguard.Quote{}, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}
	// unknown tickers are answered with "NA" values
	price, err := jsonpath.Get("$.close", jobj)
	if err != nil {
		return wealthguard.Quote{}, fmt.Errorf("error parsing %q: %w", symbol, err)
	}
	if _, ok := price.(float64); !ok {
		return wealthguard.Quote{}, fmt.Errorf("%q: %w", symbol, ErrNoQuote)
	}
	return wealthguard.Quote{
		Price:         number(jobj, "$.close"),
		Change:        number(jobj, "$.change"),
		ChangePercent: number(jobj, "$.change_p"),
		Currency:      wealthguard.DefaultCurrency,
	}, nil
}

// eodhdSymbol translates a Yahoo symbol to the EODHD ticker.
func eodhdSymbol(symbol string) string {
	if s, ok := strings.CutSuffix(symbol, ".DE"); ok {
		return s + ".XETRA"
	}
	return symbol
}
