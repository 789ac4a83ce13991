package wealthguard

import (
	"math"
	"testing"
)

// testInstruments are four instruments with 45/25/15/15 targets.
var testInstruments = Instruments{
	{Name: "A", TargetPercent: 45, Color: "#1"},
	{Name: "B", TargetPercent: 25, Color: "#2"},
	{Name: "C", TargetPercent: 15, Color: "#3"},
	{Name: "D", TargetPercent: 15, Color: "#4"},
}

// txs builds one transaction per instrument name and amount pair.
func txs(pairs ...any) []Transaction {
	var res []Transaction
	for i := 0; i+1 < len(pairs); i += 2 {
		res = append(res, Transaction{Date: "2026-01", ETF: pairs[i].(string), Amount: pairs[i+1].(float64)})
	}
	return res
}

func assertNear(t *testing.T, name string, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tolerance)
	}
}
