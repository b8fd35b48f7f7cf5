package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/efdtools/efd-pis-cofins/money"
)

// PresentedValue mirrors Value with every field nullable, the shape a
// report sink actually writes: rounded to money.RoundValue precision,
// with negligible amounts (spec.md §4.7: "values below 0.005 in
// absolute value are coerced to null") turned into the null variant.
type PresentedValue struct {
	ValorItem *decimal.Decimal
	ValorBC   *decimal.Decimal
	RBNCTrib  *decimal.Decimal
	RBNCNTrib *decimal.Decimal
	RBNCExp   *decimal.Decimal
	RBCum     *decimal.Decimal
}

func presentField(d decimal.Decimal) *decimal.Decimal {
	if money.IsNegligible(d) {
		return nil
	}
	rounded := money.RoundValue(d)
	return &rounded
}

// Present rounds and null-coerces v for display.
func Present(v Value) PresentedValue {
	return PresentedValue{
		ValorItem: presentField(v.ValorItem),
		ValorBC:   presentField(v.ValorBC),
		RBNCTrib:  presentField(v.RBNCTrib),
		RBNCNTrib: presentField(v.RBNCNTrib),
		RBNCExp:   presentField(v.RBNCExp),
		RBCum:     presentField(v.RBCum),
	}
}

// PresentedCST returns the row's CST for display, or (0, false) when it
// is a synthetic sentinel ≥ 900 that must be nulled in the output.
func (r Row) PresentedCST() (int, bool) {
	if r.SyntheticCST() {
		return 0, false
	}
	return r.Key.CST, true
}
