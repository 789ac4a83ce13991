// Package renderer renders the display models of the dashboard as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/wealthguard"
)

//go:embed templates/*.md
var templates embed.FS

// RenderOptions holds configuration for rendering the dashboard.
type RenderOptions struct {
	Currency     string // defaults to wealthguard.DefaultCurrency
	SkipProperty bool   // Do not render the property section.
	SkipMantra   bool
}

// RenderDashboard renders the Dashboard to a markdown string.
func RenderDashboard(d wealthguard.Dashboard, opts RenderOptions) string {
	partials := map[string]string{
		"dashboard_title":        "dashboard_title.md",
		"dashboard_totals":       "dashboard_totals.md",
		"dashboard_distribution": "dashboard_distribution.md",
		"dashboard_goals":        "dashboard_goals.md",
		"dashboard_contribution": "dashboard_contribution.md",
		"dashboard_property":     "dashboard_property.md",
		"dashboard_mantra":       "dashboard_mantra.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipProperty {
		partials["dashboard_property"] = ""
	}
	if opts.SkipMantra {
		partials["dashboard_mantra"] = ""
	}
	return renderTemplate("dashboard", "dashboard.md", partials, opts.currency(), d)
}

// RenderPropertyAnnual renders the yearly breakdown of the property ledger.
func RenderPropertyAnnual(a wealthguard.AnnualPropertyData, opts RenderOptions) string {
	return renderTemplate("annual", "annual.md", nil, opts.currency(), a)
}

// PriceRow is a line of the prices table.
type PriceRow struct {
	wealthguard.Instrument
	Quote  wealthguard.Quote
	Quoted bool
}

// RenderPrices renders the quotes of instruments, in instrument order.
func RenderPrices(instruments wealthguard.Instruments, prices map[string]wealthguard.Quote, opts RenderOptions) string {
	rows := make([]PriceRow, 0, len(instruments))
	for _, inst := range instruments {
		q, ok := prices[inst.Name]
		rows = append(rows, PriceRow{Instrument: inst, Quote: q, Quoted: ok})
	}
	return renderTemplate("prices", "prices.md", nil, opts.currency(), rows)
}

// RenderTransactions renders the transaction ledger.
func RenderTransactions(txs []wealthguard.Transaction, opts RenderOptions) string {
	return renderTemplate("transactions", "transactions.md", nil, opts.currency(), txs)
}

func (o RenderOptions) currency() string {
	if o.Currency == "" {
		return wealthguard.DefaultCurrency
	}
	return o.Currency
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, currency string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs(currency)).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, "templates/"+file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

func funcs(currency string) template.FuncMap {
	return template.FuncMap{
		"money":       func(v float64) string { return Money(v, currency) },
		"signedMoney": func(v float64) string { return SignedMoney(v, currency) },
		"quoteMoney":  Money,
		"percent":     func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
		"signedPercent": func(v float64) string {
			return fmt.Sprintf("%+.2f%%", v)
		},
		"category": func(c wealthguard.ExpenseCategory) string { return c.Label() },
	}
}
