package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	assert.NoError(t, err)
	return v
}

func TestMulTruncates(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected string
	}{
		{"Whole commission", "900", "0.01", "9"},
		{"Fractional result", "0.1", "0.03", "0.003"},
		{"Truncation beyond scale", "0.00000001", "0.5", "0"},
		{"Nine fractional digits drop", "0.123456789", "1", "0.12345678"},
		{"Referral share of commission", "9", "0.1", "0.9"},
		{"Negative operand", "-900", "0.01", "-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mul(d(t, tt.a), d(t, tt.b))
			assert.True(t, got.Equal(d(t, tt.expected)), "got %s", got)
		})
	}
}

func TestAddSub(t *testing.T) {
	full := d(t, "900")
	commission := Mul(full, d(t, "0.01"))
	amount := Sub(full, commission)

	assert.True(t, amount.Equal(d(t, "891")))
	// amount + commission must reconstruct full_amount exactly.
	assert.True(t, Add(amount, commission).Equal(full))
}

func TestNegPreservesSplit(t *testing.T) {
	full := Neg(d(t, "900"))
	amount := Neg(d(t, "891"))
	commission := Neg(d(t, "9"))

	assert.True(t, Add(amount, commission).Equal(full))
	assert.Equal(t, -1, full.Sign())
}

func TestCmp(t *testing.T) {
	assert.Equal(t, 0, Cmp(d(t, "1.230000000"), d(t, "1.23")))
	assert.Equal(t, -1, Cmp(d(t, "1.22"), d(t, "1.23")))
	assert.Equal(t, 1, Cmp(d(t, "1.24"), d(t, "1.23")))
	// Digits beyond scale 8 do not participate in comparison.
	assert.Equal(t, 0, Cmp(d(t, "1.000000001"), d(t, "1")))
}

func TestDust(t *testing.T) {
	assert.True(t, Dust.Equal(d(t, "0.00000001")))
	assert.Equal(t, 0, Cmp(Dust, d(t, "0.00000001")))
	assert.Equal(t, -1, Cmp(decimal.Zero, Dust))
}

func TestAbs(t *testing.T) {
	assert.True(t, Abs(d(t, "-9")).Equal(d(t, "9")))
	assert.True(t, Abs(d(t, "9")).Equal(d(t, "9")))
}

func TestParse(t *testing.T) {
	v, err := Parse("900.123456789")
	assert.NoError(t, err)
	assert.True(t, v.Equal(d(t, "900.12345678")))

	_, err = Parse("12,5")
	assert.Error(t, err)

	_, err = Parse("")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "891.00000000", Format(d(t, "891")))
	assert.Equal(t, "-9.00000000", Format(d(t, "-9")))
	assert.Equal(t, "0.00000001", Format(Dust))
}
