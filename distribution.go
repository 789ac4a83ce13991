package wealthguard

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// Distribution is the current allocation of one instrument compared with its target.
type Distribution struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`   // total contributed to the instrument
	Percent   float64 `json:"percent"` // share of all contributions, 1 decimal
	Target    float64 `json:"target"`
	Color     string  `json:"color"`
	Deviation float64 `json:"deviation"` // Percent - Target in percentage points, 1 decimal
}

// CalculateDistribution sums transaction amounts per instrument and compares each share
// with the instrument's target. The result has one entry per instrument in configuration
// order.
func CalculateDistribution(instruments Instruments, txs []Transaction) []Distribution {
	totals := make(map[string]decimal.Decimal)
	var grand decimal.Decimal
	for _, tx := range txs {
		amount := newDecimal(tx.Amount)
		totals[tx.ETF] = totals[tx.ETF].Add(amount)
		grand = grand.Add(amount)
	}

	result := make([]Distribution, 0, len(instruments))
	for _, inst := range instruments {
		value := totals[inst.Name]
		percent := ratio(value, grand)
		deviation := percent.Sub(newDecimal(inst.TargetPercent))
		result = append(result, Distribution{
			Name:      inst.Name,
			Value:     value.InexactFloat64(),
			Percent:   round(percent, 1),
			Target:    inst.TargetPercent,
			Color:     inst.Color,
			Deviation: round(deviation, 1),
		})
	}
	return result
}

// exceeds reports whether the deviation strictly exceeds threshold in magnitude.
func (d Distribution) exceeds(threshold float64) bool {
	return newDecimal(d.Deviation).Abs().GreaterThan(newDecimal(threshold))
}

// NeedsRebalancing reports whether any instrument deviates from its target by strictly more
// than threshold percentage points.
func NeedsRebalancing(dist []Distribution, threshold float64) bool {
	return slices.ContainsFunc(dist, func(d Distribution) bool { return d.exceeds(threshold) })
}

// Action is the side of a suggested trade.
type Action string

const (
	Buy  Action = "buy"
	Sell Action = "sell"
)

// RebalanceAction is a suggested trade that brings an instrument back to its target.
type RebalanceAction struct {
	ETF    string  `json:"etf"`
	Action Action  `json:"action"`
	Amount float64 `json:"amount"`
}

// RebalanceActions suggests one trade per instrument exceeding threshold, largest
// correction first. totalValue is the current portfolio value; no action is suggested
// when it is zero.
func RebalanceActions(dist []Distribution, totalValue, threshold float64) []RebalanceAction {
	actions := []RebalanceAction{}
	if totalValue == 0 {
		return actions
	}
	total := newDecimal(totalValue)
	for _, d := range dist {
		if !d.exceeds(threshold) {
			continue
		}
		targetValue := newDecimal(d.Target).Div(hundred).Mul(total)
		diff := targetValue.Sub(newDecimal(d.Value))
		action := Sell
		if diff.IsPositive() {
			action = Buy
		}
		actions = append(actions, RebalanceAction{
			ETF:    d.Name,
			Action: action,
			Amount: diff.Abs().InexactFloat64(),
		})
	}
	slices.SortStableFunc(actions, func(a, b RebalanceAction) int { return cmp.Compare(b.Amount, a.Amount) })
	return actions
}
