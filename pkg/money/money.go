// Package money provides exact fixed-point arithmetic for monetary values.
// All operations are carried out at scale 8 with truncation, never with
// native floats.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits every monetary value keeps.
const Scale = 8

// Dust is the smallest representable monetary value, 0.00000001.
var Dust = decimal.New(1, -Scale)

func Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b).Truncate(Scale)
}

func Sub(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b).Truncate(Scale)
}

func Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b).Truncate(Scale)
}

// Cmp compares a and b at scale 8 and returns -1, 0 or 1.
func Cmp(a, b decimal.Decimal) int {
	return a.Truncate(Scale).Cmp(b.Truncate(Scale))
}

func Abs(a decimal.Decimal) decimal.Decimal {
	return a.Abs().Truncate(Scale)
}

func Neg(a decimal.Decimal) decimal.Decimal {
	return a.Neg().Truncate(Scale)
}

// Parse converts a decimal string into a monetary value. Unparseable input
// fails fast so that nothing half-valid reaches persistence.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal value %q: %w", s, err)
	}
	return d.Truncate(Scale), nil
}

// Format renders a value with all 8 fractional digits, the canonical storage
// representation.
func Format(a decimal.Decimal) string {
	return a.StringFixed(Scale)
}
