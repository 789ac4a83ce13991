package wealthguard

import (
	"testing"
	"time"
)

func TestNewDashboard(t *testing.T) {
	cfg := DefaultSettings()
	cfg.Instruments = testInstruments
	snap := Snapshot{
		Transactions: append(txs("A", 600.0, "B", 200.0, "C", 100.0, "D", 100.0),
			Transaction{Date: "2026-10", ETF: "A", Amount: 300}),
		History:    []HistoryPoint{{Month: "sept 26", Value: 1100, Contributed: 1000}},
		Properties: []Property{testProperty, {ID: "second"}},
		Incomes:    testIncomes,
		Expenses:   testExpenses[:4],
	}
	now := time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

	d := NewDashboard(cfg, snap, now)

	if d.Totals.TotalValue != 1100 || d.Totals.ReturnPercent != 10 {
		t.Errorf("Totals = %+v", d.Totals)
	}
	if !d.NeedsRebalancing {
		t.Errorf("NeedsRebalancing = false, want true")
	}
	// actions are sized against the history value, not against the 1300 contributed
	if len(d.Actions) == 0 || d.Actions[0].ETF != "A" || d.Actions[0].Action != Sell || d.Actions[0].Amount != 405 {
		t.Errorf("Actions = %+v, want A sell 405 first", d.Actions)
	}
	if want := (Contribution{Month: "2026-10", Amount: 300, MonthlyMin: 1000, Missing: 700, DaysUntilNext: 18}); d.Contribution != want {
		t.Errorf("Contribution = %+v, want %+v", d.Contribution, want)
	}
	if d.Property == nil || d.Property.Property.ID != "pt-1" {
		t.Fatalf("Property = %+v, want the first property", d.Property)
	}
	if d.Property.Summary.AnnualYield != 1.84 {
		t.Errorf("AnnualYield = %v, want 1.84", d.Property.Summary.AnnualYield)
	}
	if d.Mantra == nil || d.Mantra.Trigger != TriggerDiscipline {
		t.Errorf("Mantra = %+v, want %q", d.Mantra, TriggerDiscipline)
	}
	if len(d.Goals) != len(cfg.Goals) {
		t.Errorf("len(Goals) = %d, want %d", len(d.Goals), len(cfg.Goals))
	}
}

func TestNewDashboard_Empty(t *testing.T) {
	d := NewDashboard(DefaultSettings(), Snapshot{}, time.Date(2026, time.October, 2, 0, 0, 0, 0, time.UTC))
	if d.Property != nil {
		t.Errorf("Property = %+v, want nil", d.Property)
	}
	if len(d.Actions) != 0 {
		t.Errorf("Actions = %+v, want none", d.Actions)
	}
	if d.Contribution.Missing != 1000 || d.Contribution.DaysUntilNext != 0 {
		t.Errorf("Contribution = %+v", d.Contribution)
	}
}
