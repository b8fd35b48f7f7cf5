// Package aggregate implements the keyspace & reducer, revenue segregator,
// credit analyzer, and CST-consolidation reduction of spec.md §4.7–§4.8:
// a map-reduce over enriched lines (package fiscal) that is associative
// and commutative, run either sequentially or in parallel fold-reduce
// depending on input size (spec.md §5).
package aggregate

import "github.com/shopspring/decimal"

// Value is the six-decimal AggregationValue of spec.md §3: item value,
// base-of-calculation, and the three (plus one cumulative) credit buckets
// it apportions into. Grounded on the original Chaves/Valores shape's
// Add/AddAssign/Mul<f64> — reproduced here over decimal.Decimal so every
// addition stays exact.
type Value struct {
	ValorItem decimal.Decimal
	ValorBC   decimal.Decimal
	RBNCTrib  decimal.Decimal // credit vinculated to tributed domestic revenue
	RBNCNTrib decimal.Decimal // to non-tributed domestic revenue
	RBNCExp   decimal.Decimal // to exports
	RBCum     decimal.Decimal // to cumulative-regime revenue
}

// Add returns the element-wise sum of v and o.
func (v Value) Add(o Value) Value {
	return Value{
		ValorItem: v.ValorItem.Add(o.ValorItem),
		ValorBC:   v.ValorBC.Add(o.ValorBC),
		RBNCTrib:  v.RBNCTrib.Add(o.RBNCTrib),
		RBNCNTrib: v.RBNCNTrib.Add(o.RBNCNTrib),
		RBNCExp:   v.RBNCExp.Add(o.RBNCExp),
		RBCum:     v.RBCum.Add(o.RBCum),
	}
}

// Scale returns v with every field multiplied by factor.
func (v Value) Scale(factor decimal.Decimal) Value {
	return Value{
		ValorItem: v.ValorItem.Mul(factor),
		ValorBC:   v.ValorBC.Mul(factor),
		RBNCTrib:  v.RBNCTrib.Mul(factor),
		RBNCNTrib: v.RBNCNTrib.Mul(factor),
		RBNCExp:   v.RBNCExp.Mul(factor),
		RBCum:     v.RBCum.Mul(factor),
	}
}

// IsZero reports whether every field of v is zero.
func (v Value) IsZero() bool {
	return v.ValorItem.IsZero() && v.ValorBC.IsZero() && v.RBNCTrib.IsZero() &&
		v.RBNCNTrib.IsZero() && v.RBNCExp.IsZero() && v.RBCum.IsZero()
}

// RevenueBucket enumerates the four gross-revenue buckets of spec.md
// §4.7's revenue reduction, plus the Total sibling each percentage is
// computed against.
type RevenueBucket int

const (
	BucketTotal RevenueBucket = iota
	BucketCumulative
	BucketNonCumTotal
	BucketNonCumTributed
	BucketNonCumNonTributed
	BucketNonCumExported
)

func (b RevenueBucket) String() string {
	switch b {
	case BucketTotal:
		return "Total"
	case BucketCumulative:
		return "Cumulative"
	case BucketNonCumTotal:
		return "NonCumTotal"
	case BucketNonCumTributed:
		return "NonCumTributed"
	case BucketNonCumNonTributed:
		return "NonCumNonTributed"
	case BucketNonCumExported:
		return "NonCumExported"
	default:
		return "Unknown"
	}
}

// RevenueValue is the value for the revenue segregator (spec.md §3): the
// bucketed amount, its percentage of the period Total (filled in after
// reduction), and the set of CST codes that contributed to it.
type RevenueValue struct {
	Value      decimal.Decimal
	Percentage decimal.Decimal
	CSTs       map[int]struct{}
}

// AddRevenue merges o into v, unioning the contributing CST set.
func (v RevenueValue) AddRevenue(o RevenueValue) RevenueValue {
	out := RevenueValue{Value: v.Value.Add(o.Value), CSTs: map[int]struct{}{}}
	for cst := range v.CSTs {
		out.CSTs[cst] = struct{}{}
	}
	for cst := range o.CSTs {
		out.CSTs[cst] = struct{}{}
	}
	return out
}
