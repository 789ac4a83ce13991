package agent

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/renderer"
	"google.golang.org/genai"
)

// Source provides the state of the dashboard.
type Source interface {
	Snapshot() wealthguard.Snapshot
}

// Tools exposes the dashboard reports to the models.
type Tools struct {
	Source   Source
	Settings wealthguard.Settings
	Options  renderer.RenderOptions
	// Now is the clock of the reports. Defaults to time.Now.
	Now func() time.Time
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, args map[string]any) (string, error)
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	out, err := f.Func(ctx, args)
	if err != nil {
		return failure(id, f.Decl.Name, err)
	}
	return output(id, f.Decl.Name, out)
}

func (t *Tools) now() time.Time {
	if t.Now == nil {
		return time.Now()
	}
	return t.Now()
}

// markdown is the response schema of every tool.
func markdown(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

// Functions returns the tools in declaration order.
func (t *Tools) Functions() []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name: "get_dashboard",
				Description: `get_dashboard returns the dashboard of today: portfolio totals, the allocation
				against the targets, the rebalancing actions, goal progress, this month's contribution,
				the property summary and the mantra of the day.`,
				Response: markdown("A markdown report of the dashboard."),
			},
			Func: t.dashboard,
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "get_prices",
				Description: `get_prices returns the latest stored quote of every instrument.`,
				Response:    markdown("A markdown table of the quotes, one line per instrument."),
			},
			Func: t.prices,
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "get_transactions",
				Description: `get_transactions returns every recorded contribution, in insertion order.`,
				Response:    markdown("A markdown table of the transactions."),
			},
			Func: t.transactions,
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name: "get_property_annual",
				Description: `get_property_annual returns the incomes, expenses and net of the rental property
				for every month of a year.`,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"year": {
							Type:        genai.TypeInteger,
							Description: "The year to aggregate. The current year is the default.",
						},
					},
				},
				Response: markdown("A markdown report with the yearly totals and a table of the twelve months."),
			},
			Func: t.propertyAnnual,
		},
	}
}

func (t *Tools) dashboard(ctx context.Context, args map[string]any) (string, error) {
	d := wealthguard.NewDashboard(t.Settings, t.Source.Snapshot(), t.now())
	return renderer.RenderDashboard(d, t.Options), nil
}

func (t *Tools) prices(ctx context.Context, args map[string]any) (string, error) {
	prices := t.Source.Snapshot().Prices
	if len(prices) == 0 {
		return "", errors.New("no quotes were fetched yet")
	}
	return renderer.RenderPrices(t.Settings.Instruments, prices, t.Options), nil
}

func (t *Tools) transactions(ctx context.Context, args map[string]any) (string, error) {
	return renderer.RenderTransactions(t.Source.Snapshot().Transactions, t.Options), nil
}

func (t *Tools) propertyAnnual(ctx context.Context, args map[string]any) (string, error) {
	year, err := parseYear(args, t.now().Year())
	if err != nil {
		return "", err
	}
	snap := t.Source.Snapshot()
	a := wealthguard.CalculateAnnualPropertyData(snap.Incomes, snap.Expenses, year, t.Settings.Locale)
	return renderer.RenderPropertyAnnual(a, t.Options), nil
}

// parseYear reads the 'year' argument. Models send JSON numbers, but sometimes strings.
func parseYear(args map[string]any, def int) (int, error) {
	v, ok := args["year"]
	if !ok || v == nil {
		return def, nil
	}
	switch y := v.(type) {
	case float64:
		return int(y), nil
	case int:
		return y, nil
	case string:
		n, err := strconv.Atoi(y)
		if err != nil {
			return def, fmt.Errorf("argument 'year' must be a year like 2026, got %q", y)
		}
		return n, nil
	default:
		return def, fmt.Errorf("argument 'year' is not a number as expected but %T", v)
	}
}
