package wealthguard

import (
	"testing"
)

func TestCalculateTotals(t *testing.T) {
	testCases := []struct {
		name    string
		history []HistoryPoint
		want    Totals
	}{
		{name: "empty history", history: nil, want: Totals{}},
		{
			name: "last point is authoritative",
			history: []HistoryPoint{
				{Month: "ene 26", Value: 1000, Contributed: 1000},
				{Month: "jun 26", Value: 6680, Contributed: 6000},
			},
			want: Totals{TotalValue: 6680, TotalContributed: 6000, TotalReturn: 680, ReturnPercent: 11.33},
		},
		{
			name:    "loss",
			history: []HistoryPoint{{Value: 900, Contributed: 1000}},
			want:    Totals{TotalValue: 900, TotalContributed: 1000, TotalReturn: -100, ReturnPercent: -10},
		},
		{
			name:    "nothing contributed",
			history: []HistoryPoint{{Value: 50}},
			want:    Totals{TotalValue: 50, TotalReturn: 50},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateTotals(tc.history); got != tc.want {
				t.Errorf("CalculateTotals() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestCalculateGoalProgress(t *testing.T) {
	goals := []Goal{
		{Year: 2027, Amount: 20000, Label: "2027"},
		{Year: 2036, Amount: 300000, Label: "10 años"},
	}

	got := CalculateGoalProgress(goals, 5350, 2026)
	want := []GoalProgress{
		{Goal: goals[0], Progress: 26.8, Remaining: 14650, YearsLeft: 1},
		{Goal: goals[1], Progress: 1.8, Remaining: 294650, YearsLeft: 10},
	}
	if len(got) != len(want) {
		t.Fatalf("CalculateGoalProgress() returned %d goals, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("goal %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCalculateGoalProgress_Clamped(t *testing.T) {
	goals := []Goal{{Year: 2027, Amount: 20000}}
	got := CalculateGoalProgress(goals, 1_000_000, 2030)
	if got[0].Progress != 100 {
		t.Errorf("Progress = %v, want 100", got[0].Progress)
	}
	if got[0].Remaining != 0 {
		t.Errorf("Remaining = %v, want 0", got[0].Remaining)
	}
	if got[0].YearsLeft != -3 {
		t.Errorf("YearsLeft = %v, want -3", got[0].YearsLeft)
	}
}

func TestNextHistoryPoint(t *testing.T) {
	// The value grows by the contribution plus an arbitrary 2% markup, not by any price.
	first := NextHistoryPoint(nil, txs("A", 600.0, "B", 400.0), "oct 26", DefaultMarkup)
	if want := (HistoryPoint{Month: "oct 26", Value: 1020, Contributed: 1000}); first != want {
		t.Errorf("NextHistoryPoint(nil) = %+v, want %+v", first, want)
	}

	next := NextHistoryPoint(&first, txs("A", 500.0), "nov 26", DefaultMarkup)
	if want := (HistoryPoint{Month: "nov 26", Value: 1530, Contributed: 1500}); next != want {
		t.Errorf("NextHistoryPoint() = %+v, want %+v", next, want)
	}

	flat := NextHistoryPoint(&first, txs("A", 500.0), "nov 26", 1)
	if flat.Value != 1520 {
		t.Errorf("NextHistoryPoint() without markup value = %v, want 1520", flat.Value)
	}
}

func TestLastHistoryPoint(t *testing.T) {
	if got := LastHistoryPoint(nil); got != nil {
		t.Errorf("LastHistoryPoint(nil) = %+v, want nil", got)
	}
	h := []HistoryPoint{{Month: "a"}, {Month: "b"}}
	if got := LastHistoryPoint(h); got == nil || got.Month != "b" {
		t.Errorf("LastHistoryPoint() = %+v, want b", got)
	}
}
