package wealthguard

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// sumOf adds amount(item) over items.
func sumOf[T any](items []T, amount func(T) float64) decimal.Decimal {
	var total decimal.Decimal
	for _, item := range items {
		total = total.Add(newDecimal(amount(item)))
	}
	return total
}

// round rounds half away from zero to places decimals.
func round(d decimal.Decimal, places int32) float64 {
	return d.Round(places).InexactFloat64()
}

// ratio returns 100*num/den, or zero when den is not positive.
func ratio(num, den decimal.Decimal) decimal.Decimal {
	if !den.IsPositive() {
		return decimal.Zero
	}
	return num.Mul(hundred).Div(den)
}
