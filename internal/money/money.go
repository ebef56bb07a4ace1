// Package money holds the cent-level rounding rules shared by the receipt
// extractor and the settlement calculator.
package money

import "github.com/shopspring/decimal"

var (
	// Epsilon is the smallest balance treated as non-zero. Anything at or
	// below it is floating noise left over from splitting.
	Epsilon = decimal.RequireFromString("0.009")

	// NoiseFloor is the magnitude below which an extracted price is ignored.
	NoiseFloor = decimal.RequireFromString("0.005")

	hundred = decimal.NewFromInt(100)
)

// Round2 rounds to whole cents, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Cents converts an amount to integer cents after rounding.
func Cents(d decimal.Decimal) int64 {
	return Round2(d).Mul(hundred).IntPart()
}

// FromCents is the inverse of Cents.
func FromCents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}

// Significant reports whether |d| exceeds Epsilon.
func Significant(d decimal.Decimal) bool {
	return d.Abs().GreaterThan(Epsilon)
}

// Sum adds amounts and rounds the result to cents.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return Round2(total)
}

// Share divides an amount into n equal parts without rounding.
// A non-positive n yields zero rather than a division error.
func Share(amount decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	return amount.Div(decimal.NewFromInt(int64(n)))
}
