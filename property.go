package wealthguard

import (
	"time"

	"github.com/etnz/wealthguard/period"
	"gonum.org/v1/gonum/stat"
)

// PropertySummary is the income statement of a property over all its records.
type PropertySummary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetIncome     float64 `json:"netIncome"`
	// AnnualYield is 100*NetIncome/CurrentValue with 2 decimals. Despite its name it is not
	// normalized to a year: it covers whatever months the records span.
	AnnualYield float64 `json:"annualYield"`
}

// CalculatePropertySummary sums the incomes and expenses of property.
func CalculatePropertySummary(property Property, incomes []PropertyIncome, expenses []PropertyExpense) PropertySummary {
	var totalIncome, totalExpenses = sumOf(incomesOf(property.ID, incomes), incomeAmount), sumOf(expensesOf(property.ID, expenses), expenseAmount)
	net := totalIncome.Sub(totalExpenses)
	return PropertySummary{
		TotalIncome:   totalIncome.InexactFloat64(),
		TotalExpenses: totalExpenses.InexactFloat64(),
		NetIncome:     net.InexactFloat64(),
		AnnualYield:   round(ratio(net, newDecimal(property.CurrentValue)), 2),
	}
}

func incomeAmount(i PropertyIncome) float64   { return i.Amount }
func expenseAmount(e PropertyExpense) float64 { return e.Amount }

func incomesOf(propertyID string, incomes []PropertyIncome) []PropertyIncome {
	var res []PropertyIncome
	for _, i := range incomes {
		if i.PropertyID == propertyID {
			res = append(res, i)
		}
	}
	return res
}

func expensesOf(propertyID string, expenses []PropertyExpense) []PropertyExpense {
	var res []PropertyExpense
	for _, e := range expenses {
		if e.PropertyID == propertyID {
			res = append(res, e)
		}
	}
	return res
}

// MonthlyBucket aggregates one month of property records.
type MonthlyBucket struct {
	Month   string  `json:"month"` // short month name
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// AnnualPropertyData aggregates the property records of one year.
type AnnualPropertyData struct {
	Year          int             `json:"year"`
	TotalIncome   float64         `json:"totalIncome"`
	TotalExpenses float64         `json:"totalExpenses"`
	NetIncome     float64         `json:"netIncome"`
	MonthlyData   []MonthlyBucket `json:"monthlyData"` // always 12 buckets, January first

	// MonthsWithData counts the buckets holding at least one record and AverageMonthlyNet is
	// the mean net of those buckets. They help reading the totals when the year is partial.
	MonthsWithData    int     `json:"monthsWithData"`
	AverageMonthlyNet float64 `json:"averageMonthlyNet"`
}

// CalculateAnnualPropertyData aggregates the records whose period label falls in year.
// Records of every property are included. Month buckets are labeled in locale.
func CalculateAnnualPropertyData(incomes []PropertyIncome, expenses []PropertyExpense, year int, locale period.Locale) AnnualPropertyData {
	var yearIncomes []PropertyIncome
	for _, i := range incomes {
		if period.InYear(i.Date, year) {
			yearIncomes = append(yearIncomes, i)
		}
	}
	var yearExpenses []PropertyExpense
	for _, e := range expenses {
		if period.InYear(e.Date, year) {
			yearExpenses = append(yearExpenses, e)
		}
	}

	totalIncome := sumOf(yearIncomes, incomeAmount)
	totalExpenses := sumOf(yearExpenses, expenseAmount)

	data := AnnualPropertyData{
		Year:          year,
		TotalIncome:   totalIncome.InexactFloat64(),
		TotalExpenses: totalExpenses.InexactFloat64(),
		NetIncome:     totalIncome.Sub(totalExpenses).InexactFloat64(),
		MonthlyData:   make([]MonthlyBucket, 0, 12),
	}

	var nets []float64
	for m := time.January; m <= time.December; m++ {
		var income, expense = sumOf(yearIncomes, monthly(year, m, incomeAmount, func(i PropertyIncome) string { return i.Date })),
			sumOf(yearExpenses, monthly(year, m, expenseAmount, func(e PropertyExpense) string { return e.Date }))
		net := income.Sub(expense)
		data.MonthlyData = append(data.MonthlyData, MonthlyBucket{
			Month:   period.ShortMonth(m, locale),
			Income:  income.InexactFloat64(),
			Expense: expense.InexactFloat64(),
			Net:     net.InexactFloat64(),
		})
		if hasMonth(year, m, yearIncomes, yearExpenses) {
			nets = append(nets, net.InexactFloat64())
		}
	}
	data.MonthsWithData = len(nets)
	if len(nets) > 0 {
		data.AverageMonthlyNet = round(newDecimal(stat.Mean(nets, nil)), 2)
	}
	return data
}

// monthly restricts amount to the records labeled in month m of year.
func monthly[T any](year int, m time.Month, amount func(T) float64, label func(T) string) func(T) float64 {
	return func(r T) float64 {
		if period.InMonth(label(r), year, m) {
			return amount(r)
		}
		return 0
	}
}

func hasMonth(year int, m time.Month, incomes []PropertyIncome, expenses []PropertyExpense) bool {
	for _, i := range incomes {
		if period.InMonth(i.Date, year, m) {
			return true
		}
	}
	for _, e := range expenses {
		if period.InMonth(e.Date, year, m) {
			return true
		}
	}
	return false
}

// PropertyYears returns the years holding at least one income or expense, ascending.
func PropertyYears(incomes []PropertyIncome, expenses []PropertyExpense) []int {
	labels := make([]string, 0, len(incomes)+len(expenses))
	for _, i := range incomes {
		labels = append(labels, i.Date)
	}
	for _, e := range expenses {
		labels = append(labels, e.Date)
	}
	return period.Years(labels...)
}

// CategoryTotal is the sum of the expenses of one category.
type CategoryTotal struct {
	Category ExpenseCategory `json:"category"`
	Amount   float64         `json:"amount"`
}

// ExpensesByCategory sums expenses per category, in order of first appearance.
func ExpensesByCategory(expenses []PropertyExpense) []CategoryTotal {
	var order []ExpenseCategory
	totals := make(map[ExpenseCategory]float64)
	for _, e := range expenses {
		if _, ok := totals[e.Category]; !ok {
			order = append(order, e.Category)
		}
		totals[e.Category] = newDecimal(totals[e.Category]).Add(newDecimal(e.Amount)).InexactFloat64()
	}
	result := make([]CategoryTotal, 0, len(order))
	for _, c := range order {
		result = append(result, CategoryTotal{Category: c, Amount: totals[c]})
	}
	return result
}
