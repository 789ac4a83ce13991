package wealthguard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Instrument is one of the funds tracked by the dashboard.
type Instrument struct {
	Name          string  `json:"name" toml:"name"` // canonical name, used as join key by transactions
	FullName      string  `json:"fullName" toml:"full_name"`
	ISIN          string  `json:"isin" toml:"isin"`
	Symbol        string  `json:"yahooSymbol" toml:"symbol"` // external quote symbol
	Color         string  `json:"color" toml:"color"`
	TargetPercent float64 `json:"targetPercent" toml:"target_percent"`
}

// Instruments is the ordered set of tracked instruments.
type Instruments []Instrument

// DefaultInstruments is the allocation of the strategy: a world core and three satellites.
var DefaultInstruments = Instruments{
	{
		Name:          "MSCI World",
		FullName:      "iShares Core MSCI World",
		ISIN:          "IE00B4L5Y983",
		Symbol:        "IWDA.AS",
		Color:         "#10B981",
		TargetPercent: 45,
	},
	{
		Name:          "MSCI Europe",
		FullName:      "iShares Core MSCI Europe",
		ISIN:          "IE00B4K48X80",
		Symbol:        "IMAE.AS",
		Color:         "#3B82F6",
		TargetPercent: 25,
	},
	{
		Name:          "VanEck Defense",
		FullName:      "VanEck Defense ETF",
		ISIN:          "IE000YYE6WK5",
		Symbol:        "DFNS.DE",
		Color:         "#8B5CF6",
		TargetPercent: 15,
	},
	{
		Name:          "MSCI EM IMI",
		FullName:      "iShares Core MSCI EM IMI",
		ISIN:          "IE00BKM4GZ66",
		Symbol:        "EIMI.AS",
		Color:         "#F59E0B",
		TargetPercent: 15,
	},
}

// Lookup returns the instrument whose name matches name, ignoring case.
func (s Instruments) Lookup(name string) (Instrument, bool) {
	for _, inst := range s {
		if strings.EqualFold(inst.Name, name) {
			return inst, true
		}
	}
	return Instrument{}, false
}

// Names returns the canonical names in configuration order.
func (s Instruments) Names() []string {
	names := make([]string, 0, len(s))
	for _, inst := range s {
		names = append(names, inst.Name)
	}
	return names
}

// Validate checks that names are unique and that targets sum to 100.
func (s Instruments) Validate() error {
	var errs error
	seen := make(map[string]bool)
	var total decimal.Decimal
	for _, inst := range s {
		key := strings.ToLower(inst.Name)
		switch {
		case key == "":
			errs = errors.Join(errs, errors.New("instrument with an empty name"))
		case seen[key]:
			errs = errors.Join(errs, fmt.Errorf("instrument %q is declared twice", inst.Name))
		}
		seen[key] = true
		if inst.TargetPercent < 0 {
			errs = errors.Join(errs, fmt.Errorf("instrument %q has a negative target %v", inst.Name, inst.TargetPercent))
		}
		total = total.Add(newDecimal(inst.TargetPercent))
	}
	if !total.Equal(hundred) {
		errs = errors.Join(errs, fmt.Errorf("instrument targets sum to %s%%, want 100%%", total))
	}
	return errs
}

// Goal is a wealth target to reach by a given year.
type Goal struct {
	Year   int     `json:"year" toml:"year"`
	Amount float64 `json:"amount" toml:"amount"`
	Label  string  `json:"label" toml:"label"`
}

// DefaultGoals are ordered by year ascending.
var DefaultGoals = []Goal{
	{Year: 2027, Amount: 20000, Label: "2027"},
	{Year: 2028, Amount: 40000, Label: "2028"},
	{Year: 2031, Amount: 136000, Label: "5 años"},
	{Year: 2036, Amount: 300000, Label: "10 años"},
}

// Strategy holds the contribution and rebalancing rules.
type Strategy struct {
	MonthlyMin         float64 `json:"monthlyMin" toml:"monthly_min"`
	ContributionDays   string  `json:"contributionDays" toml:"contribution_days"`
	RebalanceThreshold float64 `json:"rebalanceThreshold" toml:"rebalance_threshold"` // deviation in percentage points
	Horizon            int     `json:"horizon" toml:"horizon"`                         // in years
}

// DefaultRebalanceThreshold is the deviation above which a corrective trade is suggested.
const DefaultRebalanceThreshold = 5.0

// DefaultStrategy contributes at least 1000 a month during the first five days of the month.
var DefaultStrategy = Strategy{
	MonthlyMin:         1000,
	ContributionDays:   "1-5",
	RebalanceThreshold: DefaultRebalanceThreshold,
	Horizon:            10,
}
