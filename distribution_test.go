package wealthguard

import (
	"slices"
	"testing"
)

func TestCalculateDistribution(t *testing.T) {
	testCases := []struct {
		name           string
		txs            []Transaction
		wantPercent    []float64
		wantDeviation  []float64
		wantRebalanced bool
	}{
		{
			name:          "on target",
			txs:           txs("A", 450.0, "B", 250.0, "C", 150.0, "D", 150.0),
			wantPercent:   []float64{45, 25, 15, 15},
			wantDeviation: []float64{0, 0, 0, 0},
		},
		{
			name:           "world overweight",
			txs:            txs("A", 600.0, "B", 200.0, "C", 100.0, "D", 100.0),
			wantPercent:    []float64{60, 20, 10, 10},
			wantDeviation:  []float64{15, -5, -5, -5},
			wantRebalanced: true,
		},
		{
			name:          "no transactions",
			txs:           nil,
			wantPercent:   []float64{0, 0, 0, 0},
			wantDeviation: []float64{-45, -25, -15, -15},
			// every deviation exceeds the threshold even though nothing was invested
			wantRebalanced: true,
		},
		{
			name:          "unknown instruments count in the total",
			txs:           txs("A", 450.0, "B", 250.0, "C", 150.0, "D", 150.0, "Z", 1000.0),
			wantPercent:   []float64{22.5, 12.5, 7.5, 7.5},
			wantDeviation: []float64{-22.5, -12.5, -7.5, -7.5},
			wantRebalanced: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dist := CalculateDistribution(testInstruments, tc.txs)
			if len(dist) != len(testInstruments) {
				t.Fatalf("CalculateDistribution() returned %d entries, want %d", len(dist), len(testInstruments))
			}
			for i, d := range dist {
				if d.Name != testInstruments[i].Name {
					t.Errorf("entry %d is %q, want %q (configuration order)", i, d.Name, testInstruments[i].Name)
				}
				if d.Percent != tc.wantPercent[i] {
					t.Errorf("%s percent = %v, want %v", d.Name, d.Percent, tc.wantPercent[i])
				}
				if d.Deviation != tc.wantDeviation[i] {
					t.Errorf("%s deviation = %v, want %v", d.Name, d.Deviation, tc.wantDeviation[i])
				}
			}
			if got := NeedsRebalancing(dist, DefaultRebalanceThreshold); got != tc.wantRebalanced {
				t.Errorf("NeedsRebalancing() = %v, want %v", got, tc.wantRebalanced)
			}
		})
	}
}

func TestCalculateDistribution_PercentSum(t *testing.T) {
	tx := txs("A", 333.33, "B", 123.45, "C", 77.7, "D", 0.01)
	var sum float64
	for _, d := range CalculateDistribution(testInstruments, tx) {
		sum += d.Percent
	}
	assertNear(t, "sum(percent)", sum, 100, 0.1)
}

func TestNeedsRebalancing_Boundary(t *testing.T) {
	dist := []Distribution{{Name: "A", Deviation: 5}, {Name: "B", Deviation: -5}}
	if NeedsRebalancing(dist, 5) {
		t.Errorf("NeedsRebalancing() with a deviation of exactly 5 = true, want false")
	}
	dist = append(dist, Distribution{Name: "C", Deviation: -5.1})
	if !NeedsRebalancing(dist, 5) {
		t.Errorf("NeedsRebalancing() with a deviation of -5.1 = false, want true")
	}
}

func TestRebalanceActions(t *testing.T) {
	dist := CalculateDistribution(testInstruments, txs("A", 600.0, "B", 200.0, "C", 100.0, "D", 100.0))

	got := RebalanceActions(dist, 1000, DefaultRebalanceThreshold)
	want := []RebalanceAction{{ETF: "A", Action: Sell, Amount: 150}}
	if !slices.Equal(got, want) {
		t.Errorf("RebalanceActions() = %v, want %v", got, want)
	}

	if got := RebalanceActions(dist, 0, DefaultRebalanceThreshold); got == nil || len(got) != 0 {
		t.Errorf("RebalanceActions() on an empty portfolio = %#v, want an empty list", got)
	}
}

func TestRebalanceActions_Sorted(t *testing.T) {
	dist := CalculateDistribution(testInstruments, txs("A", 100.0, "B", 500.0, "C", 300.0, "D", 100.0))
	got := RebalanceActions(dist, 1000, DefaultRebalanceThreshold)
	want := []RebalanceAction{
		{ETF: "A", Action: Buy, Amount: 350},
		{ETF: "B", Action: Sell, Amount: 250},
		{ETF: "C", Action: Sell, Amount: 150},
	}
	if !slices.Equal(got, want) {
		t.Errorf("RebalanceActions() = %v, want %v", got, want)
	}
	if !slices.IsSortedFunc(got, func(a, b RebalanceAction) int { return int(b.Amount - a.Amount) }) {
		t.Errorf("RebalanceActions() is not sorted by amount descending: %v", got)
	}
}
