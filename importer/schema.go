package importer

import (
	"math"
	"strconv"

	"github.com/etnz/wealthguard"
)

// Rule is the coercion applied to a column.
type Rule int

const (
	// Text copies the cell, or the field default when the cell is empty.
	Text Rule = iota
	// Required rejects the row when the cell is empty, otherwise copies it.
	Required
	// Number parses the leading float of the cell, falling back to 0.
	Number
	// RequiredNumber rejects the row when the cell is empty, otherwise behaves like Number.
	// A non numeric cell is therefore accepted as 0.
	RequiredNumber
	// Instrument rejects the row unless the cell names a known instrument, ignoring case,
	// and replaces it by the canonical name.
	Instrument
	// Category maps the cell to an expense category, defaulting to other.
	Category
)

// Field describes one column of a schema.
type Field struct {
	Column  string
	Rule    Rule
	Default string // for Text fields
}

// Kind names the record a schema produces.
type Kind string

const (
	TransactionKind Kind = "transactions"
	IncomeKind      Kind = "incomes"
	ExpenseKind     Kind = "expenses"
)

// Schema is the declarative table of the columns of one kind of row.
type Schema struct {
	Kind   Kind
	Fields []Field
}

// Value is a coerced cell.
type Value struct {
	Text   string
	Number float64
}

// Values are the coerced cells of an accepted row, by column.
type Values map[string]Value

// TransactionSchema is the schema of `fecha,etf,cantidad,precio,participaciones` files.
// A missing fecha is filled by the importer with the current month.
var TransactionSchema = Schema{
	Kind: TransactionKind,
	Fields: []Field{
		{Column: "fecha", Rule: Text},
		{Column: "etf", Rule: Instrument},
		{Column: "cantidad", Rule: RequiredNumber},
		{Column: "participaciones", Rule: Number},
		{Column: "precio", Rule: Number},
	},
}

// IncomeSchema is the schema of `fecha,monto,concepto,inquilino` files.
var IncomeSchema = Schema{
	Kind: IncomeKind,
	Fields: []Field{
		{Column: "monto", Rule: RequiredNumber},
		{Column: "fecha", Rule: Required},
		{Column: "concepto", Rule: Text, Default: "Rent"},
		{Column: "inquilino", Rule: Text},
	},
}

// ExpenseSchema is the schema of `fecha,monto,categoria,concepto` files.
var ExpenseSchema = Schema{
	Kind: ExpenseKind,
	Fields: []Field{
		{Column: "monto", Rule: RequiredNumber},
		{Column: "fecha", Rule: Required},
		{Column: "categoria", Rule: Category},
		{Column: "concepto", Rule: Text, Default: "Expense"},
	},
}

// Apply coerces row. It returns false when a rule rejects the row.
func (s Schema) Apply(row Row, instruments wealthguard.Instruments) (Values, bool) {
	values := make(Values, len(s.Fields))
	for _, f := range s.Fields {
		cell, present := row[f.Column]
		present = present && cell != ""
		var v Value
		switch f.Rule {
		case Text:
			v.Text = cell
			if !present {
				v.Text = f.Default
			}
		case Required:
			if !present {
				return nil, false
			}
			v.Text = cell
		case Number:
			v.Number = ParseNumber(cell)
		case RequiredNumber:
			if !present {
				return nil, false
			}
			v.Number = ParseNumber(cell)
		case Instrument:
			inst, ok := instruments.Lookup(cell)
			if !present || !ok {
				return nil, false
			}
			v.Text = inst.Name
		case Category:
			v.Text = string(wealthguard.ParseExpenseCategory(cell))
		}
		values[f.Column] = v
	}
	return values, true
}

// ParseNumber parses the longest leading floating point number in s and returns 0 when
// there is none. "12.5abc" is 12.5 and "1,5" is 1. Infinite and NaN values are 0.
func ParseNumber(s string) float64 {
	end := numberPrefix(s)
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// numberPrefix returns the length of the longest prefix of s shaped like a decimal float:
// optional sign, digits with at most one dot, optional exponent.
func numberPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits, dot := 0, false
	for ; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			digits++
			continue
		}
		if c == '.' && !dot {
			dot = true
			continue
		}
		break
	}
	if digits == 0 {
		return 0
	}
	end := i
	// exponent only counts when followed by digits
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j {
			end = k
		}
	}
	return end
}
