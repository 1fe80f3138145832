package domain

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of fractional digits every settled amount carries.
const MoneyPlaces int32 = 2

// MoneyTolerance is one minor unit.
var MoneyTolerance = decimal.New(1, -MoneyPlaces)

// Round2 settles an amount to two fractional digits, rounding half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// WithinTolerance reports whether a and b differ by at most one minor unit.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(MoneyTolerance)
}
