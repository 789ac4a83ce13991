package wealthguard

import (
	"time"

	"github.com/etnz/wealthguard/period"
	"github.com/shopspring/decimal"
)

// Contribution compares the contributions of the current month with the strategy minimum.
type Contribution struct {
	Month         string  `json:"month"`
	Amount        float64 `json:"amount"`
	MonthlyMin    float64 `json:"monthlyMin"`
	Missing       float64 `json:"missing"`
	DaysUntilNext int     `json:"daysUntilNext"`
}

// PropertyReport is the ledger view of the active property.
type PropertyReport struct {
	Property   Property        `json:"property"`
	Summary    PropertySummary `json:"summary"`
	Categories []CategoryTotal `json:"categories"`
}

// Dashboard is the display model of the whole application.
type Dashboard struct {
	Date             string            `json:"date"`
	Totals           Totals            `json:"totals"`
	Distribution     []Distribution    `json:"distribution"`
	NeedsRebalancing bool              `json:"needsRebalancing"`
	Actions          []RebalanceAction `json:"actions"`
	Goals            []GoalProgress    `json:"goals"`
	Contribution     Contribution      `json:"contribution"`
	Prices           map[string]Quote  `json:"prices"`
	Property         *PropertyReport   `json:"property,omitempty"`
	Mantra           *Mantra           `json:"mantra,omitempty"`
}

// NewDashboard derives the display model from the persisted records.
//
// Rebalance actions are computed against the total value of the history, not against the
// sum of the transactions.
func NewDashboard(cfg Settings, snap Snapshot, now time.Time) Dashboard {
	totals := CalculateTotals(snap.History)
	dist := CalculateDistribution(cfg.Instruments, snap.Transactions)
	threshold := cfg.Strategy.RebalanceThreshold
	needs := NeedsRebalancing(dist, threshold)

	month := period.Key(now)
	amount := MonthlyContribution(snap.Transactions, month)
	missing := decimal.Max(newDecimal(cfg.Strategy.MonthlyMin).Sub(newDecimal(amount)), decimal.Zero)

	d := Dashboard{
		Date:             now.Format(time.DateOnly),
		Totals:           totals,
		Distribution:     dist,
		NeedsRebalancing: needs,
		Actions:          RebalanceActions(dist, totals.TotalValue, threshold),
		Goals:            CalculateGoalProgress(cfg.Goals, totals.TotalValue, now.Year()),
		Contribution: Contribution{
			Month:         month,
			Amount:        amount,
			MonthlyMin:    cfg.Strategy.MonthlyMin,
			Missing:       missing.InexactFloat64(),
			DaysUntilNext: DaysUntilContribution(now),
		},
		Prices: snap.Prices,
	}
	if p, ok := snap.ActiveProperty(); ok {
		d.Property = &PropertyReport{
			Property:   p,
			Summary:    CalculatePropertySummary(p, snap.Incomes, snap.Expenses),
			Categories: ExpensesByCategory(expensesOf(p.ID, snap.Expenses)),
		}
	}
	if m, ok := SelectMantra(cfg.Mantras, totals, needs); ok {
		d.Mantra = &m
	}
	return d
}
