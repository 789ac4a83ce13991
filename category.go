package wealthguard

import (
	"slices"
	"strings"
)

// ExpenseCategory classifies a property expense. It is a closed enumeration.
type ExpenseCategory string

const (
	Maintenance  ExpenseCategory = "maintenance"
	Taxes        ExpenseCategory = "taxes"
	Insurance    ExpenseCategory = "insurance"
	CommunityFee ExpenseCategory = "community-fee"
	Utilities    ExpenseCategory = "utilities"
	Management   ExpenseCategory = "management"
	Other        ExpenseCategory = "other"
)

// ExpenseCategories lists every category in display order.
var ExpenseCategories = []ExpenseCategory{Maintenance, Taxes, Insurance, CommunityFee, Utilities, Management, Other}

// Spanish names accepted on import.
var categoryAliases = map[string]ExpenseCategory{
	"mantenimiento": Maintenance,
	"impuestos":     Taxes,
	"seguros":       Insurance,
	"comunidad":     CommunityFee,
	"suministros":   Utilities,
	"gestion":       Management,
	"gestión":       Management,
	"otros":         Other,
}

var categoryLabels = map[ExpenseCategory]string{
	Maintenance:  "Maintenance",
	Taxes:        "Taxes",
	Insurance:    "Insurance",
	CommunityFee: "Community fee",
	Utilities:    "Utilities",
	Management:   "Management",
	Other:        "Other",
}

// ParseExpenseCategory maps s to a category, ignoring case. Unknown or empty values map to Other.
func ParseExpenseCategory(s string) ExpenseCategory {
	key := strings.ToLower(strings.TrimSpace(s))
	if c := ExpenseCategory(key); c.IsValid() {
		return c
	}
	if c, ok := categoryAliases[key]; ok {
		return c
	}
	return Other
}

// IsValid reports whether c is one of the known categories.
func (c ExpenseCategory) IsValid() bool { return slices.Contains(ExpenseCategories, c) }

// Label returns the display name of c.
func (c ExpenseCategory) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}
