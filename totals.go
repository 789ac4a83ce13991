package wealthguard

import "github.com/shopspring/decimal"

// Totals are the current portfolio figures.
type Totals struct {
	TotalValue       float64 `json:"totalValue"`
	TotalContributed float64 `json:"totalContributed"`
	TotalReturn      float64 `json:"totalReturn"`
	ReturnPercent    float64 `json:"returnPercent"` // 2 decimals
}

// CalculateTotals reads the totals from the last history point. They are never recomputed
// from transactions. An empty history yields zero totals.
func CalculateTotals(history []HistoryPoint) Totals {
	if len(history) == 0 {
		return Totals{}
	}
	latest := history[len(history)-1]
	value, contributed := newDecimal(latest.Value), newDecimal(latest.Contributed)
	ret := value.Sub(contributed)
	return Totals{
		TotalValue:       latest.Value,
		TotalContributed: latest.Contributed,
		TotalReturn:      ret.InexactFloat64(),
		ReturnPercent:    round(ratio(ret, contributed), 2),
	}
}

// GoalProgress is the progress toward a goal.
type GoalProgress struct {
	Goal
	Progress  float64 `json:"progress"` // percent, clamped to 100, 1 decimal
	Remaining float64 `json:"remaining"`
	YearsLeft int     `json:"yearsLeft"`
}

// CalculateGoalProgress returns the progress of totalValue toward each goal, in goal order.
// currentYear is the calendar year the remaining time is counted from.
func CalculateGoalProgress(goals []Goal, totalValue float64, currentYear int) []GoalProgress {
	value := newDecimal(totalValue)
	result := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		amount := newDecimal(g.Amount)
		progress := 100.0
		if amount.IsPositive() {
			progress = min(100, round(ratio(value, amount), 1))
		}
		remaining := decimal.Max(amount.Sub(value), decimal.Zero)
		result = append(result, GoalProgress{
			Goal:      g,
			Progress:  progress,
			Remaining: remaining.InexactFloat64(),
			YearsLeft: g.Year - currentYear,
		})
	}
	return result
}
