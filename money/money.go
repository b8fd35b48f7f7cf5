// Package money centralizes the decimal representation and rounding rules
// used for every monetary and rate field in the fiscal pipeline. No binary
// floating point is used for these fields; shopspring/decimal backs every
// value so apportionment arithmetic carries arbitrary precision until the
// rounding points named by spec.md §4.3 and §9.
package money

import (
	"github.com/shopspring/decimal"
)

// ValuePlaces and RatePlaces are the rounding scales applied at aggregation
// and emission time, never at coercion time.
const (
	ValuePlaces int32 = 2
	RatePlaces  int32 = 4
)

// SmallThreshold is the absolute value below which a final aggregated
// amount is nulled out rather than reported (spec.md §4.7).
var SmallThreshold = decimal.NewFromFloat(0.005)

func init() {
	decimal.DivisionPrecision = 32
}

// RoundValue rounds a monetary amount to ValuePlaces using half-even
// (banker's) rounding.
func RoundValue(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(ValuePlaces)
}

// RoundRate rounds a percentage rate to RatePlaces using half-even rounding.
func RoundRate(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(RatePlaces)
}

// IsNegligible reports whether the absolute value of d is below the
// reporting threshold, in which case it should be nulled out of a table.
func IsNegligible(d decimal.Decimal) bool {
	return d.Abs().LessThan(SmallThreshold)
}

// ParseBRL parses a Brazilian-locale decimal string: an optional leading
// sign, dots as thousand separators (removed), and the first remaining
// comma treated as the decimal point. A second comma or an embedded sign
// after the first character is rejected.
func ParseBRL(raw string) (decimal.Decimal, error) {
	return parseLocaleDecimal(raw)
}
