package wealthguard

import (
	"testing"
	"time"
)

func TestDaysUntilContribution(t *testing.T) {
	testCases := []struct {
		now  time.Time
		want int
	}{
		{time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC), 0},
		{time.Date(2026, time.October, 5, 23, 59, 0, 0, time.UTC), 0},
		{time.Date(2026, time.October, 6, 0, 0, 0, 0, time.UTC), 26},
		{time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC), 18},
		{time.Date(2026, time.December, 31, 12, 0, 0, 0, time.UTC), 1},
	}
	for _, tc := range testCases {
		if got := DaysUntilContribution(tc.now); got != tc.want {
			t.Errorf("DaysUntilContribution(%v) = %d, want %d", tc.now, got, tc.want)
		}
	}
}

func TestMonthlyContribution(t *testing.T) {
	tx := []Transaction{
		{Date: "2026-09", Amount: 1000},
		{Date: "2026-10", Amount: 450.1},
		{Date: "2026-10", Amount: 250.2},
	}
	if got := MonthlyContribution(tx, "2026-10"); got != 700.3 {
		t.Errorf("MonthlyContribution() = %v, want 700.3", got)
	}
	if got := MonthlyContribution(tx, "2026-11"); got != 0 {
		t.Errorf("MonthlyContribution() = %v, want 0", got)
	}
}
