package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/period"
	"github.com/etnz/wealthguard/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// outline parses markdown and returns its headings and the number of rows of each table.
func outline(t *testing.T, md string) (headings []string, tables []int) {
	t.Helper()
	src := []byte(md)
	doc := goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser().Parse(text.NewReader(src))
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading:
			headings = append(headings, string(n.Text(src)))
		case east.KindTable:
			rows := 0
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if c.Kind() == east.KindTableRow {
					rows++
				}
			}
			tables = append(tables, rows)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return headings, tables
}

func demoDashboard() wealthguard.Dashboard {
	snap := store.Demo(period.Spanish)
	now := time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)
	return wealthguard.NewDashboard(wealthguard.DefaultSettings(), snap, now)
}

func TestRenderDashboard(t *testing.T) {
	md := RenderDashboard(demoDashboard(), RenderOptions{})
	require.NotContains(t, md, "error ")

	headings, tables := outline(t, md)
	assert.Equal(t, []string{
		"Wealth Guard on 2026-10-14",
		"Portfolio",
		"Distribution",
		"Goals",
		"Contribution 2026-10",
		"Property: Apartamento Lisboa",
	}, headings)
	// totals, distribution, goals, property summary, categories
	assert.Equal(t, []int{1, 4, 4, 1, 4}, tables)

	assert.Contains(t, md, "Allocation within target.")
	assert.Contains(t, md, money.New(668000, "EUR").Display())
	assert.Contains(t, md, "1.84%")
	assert.Contains(t, md, "> Mantén el rumbo.")
}

func TestRenderDashboard_Skip(t *testing.T) {
	md := RenderDashboard(demoDashboard(), RenderOptions{SkipProperty: true, SkipMantra: true})
	headings, _ := outline(t, md)
	assert.NotContains(t, headings, "Property: Apartamento Lisboa")
	assert.NotContains(t, md, "> ")
}

func TestRenderDashboard_Rebalancing(t *testing.T) {
	snap := wealthguard.Snapshot{
		Transactions: []wealthguard.Transaction{{Date: "2026-10", ETF: "MSCI World", Amount: 1000}},
		History:      []wealthguard.HistoryPoint{{Value: 1020, Contributed: 1000}},
	}
	d := wealthguard.NewDashboard(wealthguard.DefaultSettings(), snap, time.Date(2026, time.October, 3, 0, 0, 0, 0, time.UTC))
	md := RenderDashboard(d, RenderOptions{})

	_, tables := outline(t, md)
	// totals, distribution, actions, goals
	assert.Equal(t, []int{1, 4, 4, 4}, tables)
	assert.Contains(t, md, "**Rebalancing needed.**")
	assert.Contains(t, md, "| MSCI World | sell |")
	assert.Contains(t, md, "Contribution window is open.")
}

func TestRenderPropertyAnnual(t *testing.T) {
	snap := store.Demo(period.English)
	a := wealthguard.CalculateAnnualPropertyData(snap.Incomes, snap.Expenses, 2025, period.English)
	md := RenderPropertyAnnual(a, RenderOptions{})

	headings, tables := outline(t, md)
	assert.Equal(t, []string{"Property 2025"}, headings)
	assert.Equal(t, []int{1, 12}, tables)
	assert.Contains(t, md, "| Dec | ")
}

func TestRenderPrices(t *testing.T) {
	prices := map[string]wealthguard.Quote{
		"MSCI World": {Price: 104.62, Change: -0.38, ChangePercent: -0.36, Currency: "EUR", LastUpdated: "09:30:05"},
	}
	md := RenderPrices(wealthguard.DefaultInstruments, prices, RenderOptions{})
	_, tables := outline(t, md)
	assert.Equal(t, []int{4}, tables)
	assert.Contains(t, md, "| MSCI World | IWDA.AS | "+money.New(10462, "EUR").Display()+" | -0.38 | -0.36% | 09:30:05 |")
	assert.Contains(t, md, "| MSCI Europe | IMAE.AS | - | - | - | |")
}

func TestRenderTransactions(t *testing.T) {
	md := RenderTransactions(store.Demo(period.Spanish).Transactions, RenderOptions{})
	_, tables := outline(t, md)
	assert.Equal(t, []int{4}, tables)
	assert.True(t, strings.HasPrefix(md, "# Transactions"))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, money.New(123457, "EUR").Display(), Money(1234.567, "EUR"))
	assert.Equal(t, money.New(-500, "USD").Display(), Money(-5, "USD"))
	assert.Equal(t, "-", SignedMoney(0, "EUR"))
	assert.Equal(t, "+"+money.New(100, "EUR").Display(), SignedMoney(1, "EUR"))

	// quotes in pence are shown in pounds
	assert.Equal(t, money.New(1235, "GBP").Display(), Money(1234.5, "GBp"))
	assert.Equal(t, money.New(1235, "GBP").Display(), Money(1234.5, "GBX"))
	assert.Equal(t, money.New(123450, "GBP").Display(), Money(1234.5, "GBP"))
}
