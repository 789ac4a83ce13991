package wealthguard

// Transaction is a periodic buy of an instrument.
type Transaction struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"` // period label, month granularity
	ETF    string  `json:"etf"`  // canonical instrument name
	Amount float64 `json:"amount"`
	Shares float64 `json:"shares"`
	Price  float64 `json:"price"`
}

// HistoryPoint is a snapshot of the portfolio value and of the cumulative contributions.
// The last point of the history is the only source of current totals.
type HistoryPoint struct {
	Month       string  `json:"month"`
	Value       float64 `json:"value"`
	Contributed float64 `json:"contributed"`
}

// Property is a rental property.
type Property struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	PurchaseDate  string  `json:"purchaseDate"`
	PurchasePrice float64 `json:"purchasePrice"`
	CurrentValue  float64 `json:"currentValue"`
	MonthlyRent   float64 `json:"monthlyRent"`
}

// PropertyIncome is a rent (or other) payment received for a property.
type PropertyIncome struct {
	ID         string  `json:"id"`
	PropertyID string  `json:"propertyId"`
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
	Concept    string  `json:"concept"`
	Tenant     string  `json:"tenant,omitempty"`
}

// PropertyExpense is a cost paid for a property.
type PropertyExpense struct {
	ID         string          `json:"id"`
	PropertyID string          `json:"propertyId"`
	Date       string          `json:"date"`
	Amount     float64         `json:"amount"`
	Category   ExpenseCategory `json:"category"`
	Concept    string          `json:"concept"`
}

// Quote is the latest market data for an instrument. Quotes are replaced wholesale on each
// refresh.
type Quote struct {
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Currency      string  `json:"currency"`
	LastUpdated   string  `json:"lastUpdated"`
}

// DefaultCurrency is used when a quote does not report its currency.
const DefaultCurrency = "EUR"

// Snapshot is the persisted state of the dashboard: all record collections in insertion
// order. UI state is never part of it.
type Snapshot struct {
	Transactions []Transaction     `json:"transactions"`
	History      []HistoryPoint    `json:"history"`
	Prices       map[string]Quote  `json:"prices"`
	Properties   []Property        `json:"properties"`
	Incomes      []PropertyIncome  `json:"incomes"`
	Expenses     []PropertyExpense `json:"expenses"`
}

// ActiveProperty returns the first registered property. The model supports a collection but
// the dashboard tracks a single active property.
func (s Snapshot) ActiveProperty() (Property, bool) {
	if len(s.Properties) == 0 {
		return Property{}, false
	}
	return s.Properties[0], true
}
