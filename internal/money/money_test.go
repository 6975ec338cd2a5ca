package money_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-studio/internal/money"
)

func TestParseOrZero(t *testing.T) {
	d := money.ParseOrZero("123.456")
	assert.True(t, d.Equal(dec.RequireFromString("123.456")))

	// Malformed text is a valid editing state, coerced to zero
	assert.True(t, money.ParseOrZero("abc").IsZero())
	assert.True(t, money.ParseOrZero("").IsZero())
	assert.True(t, money.ParseOrZero("1.2.3").IsZero())
}

func TestMustFromString(t *testing.T) {
	d := money.MustFromString("999.999")
	assert.True(t, d.Equal(dec.RequireFromString("999.999")))

	assert.Panics(t, func() {
		money.MustFromString("invalid")
	})
}

func TestDeriveAmount(t *testing.T) {
	tests := []struct {
		name     string
		rate     string
		quantity string
		discount string
		expected string
	}{
		{"no discount", "10", "2", "0", "20.000"},
		{"half discount", "10", "2", "50", "10.000"},
		{"unparsable rate", "abc", "2", "0", "0.000"},
		{"unparsable quantity", "10", "", "0", "0.000"},
		{"fractional rate", "1.5", "3", "0", "4.500"},
		{"rounds half away from zero", "0.125", "1", "50", "0.063"},
		{"full discount", "100", "5", "100", "0.000"},
		{"three decimal rate", "2.345", "2", "0", "4.690"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.DeriveAmount(tt.rate, tt.quantity, tt.discount)
			assert.Equal(t, tt.expected, money.Format(got),
				"rate=%s qty=%s disc=%s", tt.rate, tt.quantity, tt.discount)
		})
	}
}

func TestDeriveAmount_Monotonic(t *testing.T) {
	base := money.DeriveAmount("10", "2", "10")

	// Non-decreasing in rate and quantity
	assert.True(t, money.DeriveAmount("11", "2", "10").GreaterThanOrEqual(base))
	assert.True(t, money.DeriveAmount("10", "3", "10").GreaterThanOrEqual(base))

	// Non-increasing in discount
	assert.True(t, money.DeriveAmount("10", "2", "20").LessThanOrEqual(base))

	// Non-negative for non-negative inputs
	assert.True(t, money.IsNonNegative(base))
}

func TestDeriveTotal(t *testing.T) {
	amounts := []dec.Decimal{
		money.MustFromString("15.000"),
		money.MustFromString("18.000"),
	}
	total := money.DeriveTotal(amounts)
	require.Equal(t, "33.000", money.Format(total))
}

func TestDeriveTotal_Empty(t *testing.T) {
	total := money.DeriveTotal(nil)
	assert.True(t, total.IsZero())
	assert.Equal(t, "0.000", money.Format(total))
}

func TestFromFloat(t *testing.T) {
	assert.Equal(t, "1.235", money.Format(money.FromFloat(1.23456)))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "20.000", money.Format(dec.NewFromInt(20)))
	assert.Equal(t, "0.500", money.Format(dec.RequireFromString("0.5")))
}
