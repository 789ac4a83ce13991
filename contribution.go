package wealthguard

import (
	"math"
	"time"
)

// contributionWindow is the last day of the month on which contributions are made.
const contributionWindow = 5

// DaysUntilContribution returns 0 during the contribution window (days 1 to 5 of the month)
// and otherwise the number of days, rounded up, before the 1st of next month.
func DaysUntilContribution(now time.Time) int {
	if now.Day() <= contributionWindow {
		return 0
	}
	next := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
	return int(math.Ceil(next.Sub(now).Hours() / 24))
}

// MonthlyContribution sums the transactions of the period label.
func MonthlyContribution(txs []Transaction, label string) float64 {
	var total float64
	for _, tx := range txs {
		if tx.Date == label {
			total = newDecimal(total).Add(newDecimal(tx.Amount)).InexactFloat64()
		}
	}
	return total
}
