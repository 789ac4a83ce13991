package store

import (
	"time"

	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/period"
)

const demoPropertyID = "pt-1"

// Demo returns the demo data set: one month of contributions on target, six months of
// history and a rented apartment with its first semester of records. History labels are in
// locale.
func Demo(locale period.Locale) wealthguard.Snapshot {
	label := func(m time.Month) string { return period.Label(time.Date(2026, m, 1, 0, 0, 0, 0, time.UTC), locale) }
	return wealthguard.Snapshot{
		Transactions: []wealthguard.Transaction{
			{ID: "1", Date: "2026-01", ETF: "MSCI World", Amount: 450, Shares: 5.2, Price: 86.54},
			{ID: "2", Date: "2026-01", ETF: "MSCI Europe", Amount: 250, Shares: 3.8, Price: 65.79},
			{ID: "3", Date: "2026-01", ETF: "VanEck Defense", Amount: 150, Shares: 4.1, Price: 36.59},
			{ID: "4", Date: "2026-01", ETF: "MSCI EM IMI", Amount: 150, Shares: 4.5, Price: 33.33},
		},
		History: []wealthguard.HistoryPoint{
			{Month: label(time.January), Value: 1000, Contributed: 1000},
			{Month: label(time.February), Value: 2050, Contributed: 2000},
			{Month: label(time.March), Value: 3180, Contributed: 3000},
			{Month: label(time.April), Value: 4420, Contributed: 4000},
			{Month: label(time.May), Value: 5350, Contributed: 5000},
			{Month: label(time.June), Value: 6680, Contributed: 6000},
		},
		Properties: []wealthguard.Property{{
			ID:            demoPropertyID,
			Name:          "Apartamento Lisboa",
			Location:      "Lisboa, Portugal",
			PurchaseDate:  "2024-06",
			PurchasePrice: 180000,
			CurrentValue:  195000,
			MonthlyRent:   850,
		}},
		Incomes: []wealthguard.PropertyIncome{
			{ID: "inc-1", PropertyID: demoPropertyID, Date: "2025-01", Amount: 850, Concept: "Alquiler Enero"},
			{ID: "inc-2", PropertyID: demoPropertyID, Date: "2025-02", Amount: 850, Concept: "Alquiler Febrero"},
			{ID: "inc-3", PropertyID: demoPropertyID, Date: "2025-03", Amount: 850, Concept: "Alquiler Marzo"},
			{ID: "inc-4", PropertyID: demoPropertyID, Date: "2025-04", Amount: 850, Concept: "Alquiler Abril"},
			{ID: "inc-5", PropertyID: demoPropertyID, Date: "2025-05", Amount: 850, Concept: "Alquiler Mayo"},
			{ID: "inc-6", PropertyID: demoPropertyID, Date: "2025-06", Amount: 850, Concept: "Alquiler Junio"},
		},
		Expenses: []wealthguard.PropertyExpense{
			{ID: "exp-1", PropertyID: demoPropertyID, Date: "2025-01", Amount: 45, Category: wealthguard.CommunityFee, Concept: "Cuota comunidad"},
			{ID: "exp-2", PropertyID: demoPropertyID, Date: "2025-04", Amount: 1200, Category: wealthguard.Taxes, Concept: "IMI anual"},
			{ID: "exp-3", PropertyID: demoPropertyID, Date: "2025-02", Amount: 180, Category: wealthguard.Insurance, Concept: "Seguro hogar"},
			{ID: "exp-4", PropertyID: demoPropertyID, Date: "2025-03", Amount: 95, Category: wealthguard.Maintenance, Concept: "Reparación grifo"},
		},
	}
}
