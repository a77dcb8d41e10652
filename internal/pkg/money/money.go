// Package money converts between integer minor units and display amounts.
// The store sells in a single currency, so formatting is fixed to dollars.
package money

import (
	"github.com/shopspring/decimal"
)

const minorExponent = -2

// Format renders minor units as "$12.34".
func Format(minor int64) string {
	return "$" + Amount(minor)
}

// Amount renders minor units as a plain decimal string, "12.34".
func Amount(minor int64) string {
	return decimal.New(minor, minorExponent).StringFixed(2)
}

// PercentOf returns round(amount * percent / 100), rounding half away from zero.
func PercentOf(amount, percent int64) int64 {
	v := decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(percent)).
		Div(decimal.NewFromInt(100)).
		Round(0)
	return v.IntPart()
}

// Min returns the smaller of a and b.
func Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
