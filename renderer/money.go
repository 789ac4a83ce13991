package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// minorUnits maps the quote codes counted in hundredths to their currency.
// Yahoo quotes London listings in pence ("GBp").
var minorUnits = map[string]string{
	"GBp": money.GBP,
	"GBX": money.GBP,
	"ZAc": money.ZAR,
	"ZAC": money.ZAR,
	"ILA": money.ILS,
}

// Money formats value in currency, rounded to the currency fraction. Values in a minor unit
// are converted to the main unit first.
func Money(value float64, currency string) string {
	dec := decimal.NewFromFloat(value)
	if major, ok := minorUnits[currency]; ok {
		currency = major
		dec = dec.Shift(-2)
	}
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, currency).Currency()
	dec = dec.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedMoney is like Money with an explicit sign. Zero is represented as "-".
func SignedMoney(value float64, currency string) string {
	switch {
	case value == 0:
		return "-"
	case value > 0:
		return "+" + Money(value, currency)
	default:
		return Money(value, currency)
	}
}
