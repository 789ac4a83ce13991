package quotes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/wealthguard"
)

// DefaultYahooURL is the Yahoo Finance quote endpoint.
const DefaultYahooURL = "https://query1.finance.yahoo.com/v7/finance/quote"

/*
	{
	    "quoteResponse": {
	        "result": [
	            {
	                "symbol": "IWDA.AS",
	                "currency": "EUR",
	                "regularMarketPrice": 104.62,
	                "regularMarketChange": -0.38,
	                "regularMarketChangePercent": -0.3619
	            }
	        ],
	        "error": null
	    }
	}
*/

// Yahoo reads quotes from Yahoo Finance.
type Yahoo struct {
	BaseURL string // defaults to DefaultYahooURL
	Client  *http.Client
}

func (y *Yahoo) Name() string { return "yahoo" }

func (y *Yahoo) Quote(ctx context.Context, symbol string) (wealthguard.Quote, error) {
	base := y.BaseURL
	if base == "" {
		base = DefaultYahooURL
	}
	client := y.Client
	if client == nil {
		client = http.DefaultClient
	}
	addr := base + "?symbols=" + url.QueryEscape(symbol)

	var jobj any
	if err := jwget(ctx, client, addr, &jobj); err != nil {
		return wealthguard.Quote{}, fmt.Errorf("error retrieving %q: %w", symbol, err)
	}
	jval, err := jsonpath.Get("$.quoteResponse.result", jobj)
	if err != nil {
		return wealthguard.Quote{}, fmt.Errorf("error parsing %q: %w", symbol, err)
	}
	if results, ok := jval.([]any); !ok || len(results) == 0 {
		return wealthguard.Quote{}, fmt.Errorf("%q: %w", symbol, ErrNoQuote)
	}

	q := wealthguard.Quote{
		Price:         number(jobj, "$.quoteResponse.result[0].regularMarketPrice"),
		Change:        number(jobj, "$.quoteResponse.result[0].regularMarketChange"),
		ChangePercent: number(jobj, "$.quoteResponse.result[0].regularMarketChangePercent"),
		Currency:      wealthguard.DefaultCurrency,
	}
	if c, err := jsonpath.Get("$.quoteResponse.result[0].currency", jobj); err == nil {
		if s, ok := c.(string); ok && s != "" {
			q.Currency = s
		}
	}
	return q, nil
}

// number returns the float at path, or 0 when it is missing.
func number(jobj any, path string) float64 {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0
	}
	v, _ := jval.(float64)
	return v
}

// jwget performs an HTTP GET request and unmarshals the JSON response into data.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "wealthguard")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
