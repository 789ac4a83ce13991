package wealthguard

// DefaultMarkup is the instantaneous markup applied to newly contributed money when a batch
// of transactions is recorded. It stands in for market movement until the next real
// valuation and is not derived from prices.
const DefaultMarkup = 1.02

// NextHistoryPoint returns the point to append after recording batch.
//
// Starting from last (or zero when the history is empty) the contributions grow by the
// batch total and the value grows by the batch total times markup.
func NextHistoryPoint(last *HistoryPoint, batch []Transaction, label string, markup float64) HistoryPoint {
	var prev HistoryPoint
	if last != nil {
		prev = *last
	}
	totalNew := sumOf(batch, func(tx Transaction) float64 { return tx.Amount })
	return HistoryPoint{
		Month:       label,
		Value:       newDecimal(prev.Value).Add(totalNew.Mul(newDecimal(markup))).InexactFloat64(),
		Contributed: newDecimal(prev.Contributed).Add(totalNew).InexactFloat64(),
	}
}

// LastHistoryPoint returns the last point of history or nil.
func LastHistoryPoint(history []HistoryPoint) *HistoryPoint {
	if len(history) == 0 {
		return nil
	}
	return &history[len(history)-1]
}
