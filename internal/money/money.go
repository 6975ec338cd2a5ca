// Package money implements the invoice numeric engine for a 3-decimal
// minor-unit currency (KWD).
package money

import (
	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits carried by all derived values.
const Places = 3

// Zero is decimal zero
var Zero = decimal.Zero

var hundred = decimal.NewFromInt(100)

// ParseOrZero parses a decimal from editing-state text. Malformed input is
// a valid state while the user types, so it coerces to zero instead of
// returning an error.
func ParseOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero
	}
	return d
}

// FromFloat creates a decimal from a float, rounded to Places.
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(Places)
}

// MustFromString parses a decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DeriveAmount computes a line amount from editing-state text:
//
//	amount = rate * quantity * (1 - discount/100)
//
// rounded to Places digits, half away from zero. Unparsable inputs
// coerce to zero via ParseOrZero.
func DeriveAmount(rate, quantity, discountPercent string) decimal.Decimal {
	r := ParseOrZero(rate)
	q := ParseOrZero(quantity)
	d := ParseOrZero(discountPercent)

	factor := decimal.NewFromInt(1).Sub(d.Div(hundred))
	return r.Mul(q).Mul(factor).Round(Places)
}

// DeriveTotal sums already-derived line amounts and rounds to Places.
// Amounts are the single source of truth; nothing is re-derived here.
// An empty slice yields zero.
func DeriveTotal(amounts []decimal.Decimal) decimal.Decimal {
	total := Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total.Round(Places)
}

// Format renders a decimal with exactly Places fractional digits,
// matching the document's display convention.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Places)
}

// IsNonNegative returns true if decimal is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}
