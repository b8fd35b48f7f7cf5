package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/efdtools/efd-pis-cofins/fiscal"
)

var (
	cumulativePIS    = decimal.NewFromFloat(0.65)
	cumulativeCOFINS = decimal.NewFromFloat(3.00)
)

var tributedOutboundCST = map[int]struct{}{1: {}, 2: {}, 3: {}, 5: {}}
var nonTributedOutboundCST = map[int]struct{}{4: {}, 6: {}, 7: {}, 8: {}, 9: {}, 49: {}}

// bucketsFor returns every PeriodKey bucket an outbound line contributes
// to, per spec.md §4.7's revenue reduction.
func bucketsFor(l *fiscal.Line) []RevenueBucket {
	if l.AliqPIS.Equal(cumulativePIS) && l.AliqCOFINS.Equal(cumulativeCOFINS) {
		return []RevenueBucket{BucketCumulative, BucketTotal}
	}
	buckets := []RevenueBucket{BucketNonCumTotal, BucketTotal}
	if _, ok := tributedOutboundCST[l.CST]; ok {
		return append(buckets, BucketNonCumTributed)
	}
	if _, ok := nonTributedOutboundCST[l.CST]; ok {
		if fiscal.ExportingCFOP(l.CFOP) {
			return append(buckets, BucketNonCumExported)
		}
		return append(buckets, BucketNonCumNonTributed)
	}
	return buckets
}

// SegregateRevenue implements spec.md §4.7's revenue reduction: group
// outbound lines by PeriodKey, sum into buckets, then express each
// non-Total bucket as a percentage of its period's Total. Rows with
// zero value are dropped.
func SegregateRevenue(lines []*fiscal.Line) map[PeriodKey]RevenueValue {
	var outbound []*fiscal.Line
	for _, l := range lines {
		if IsOutboundCST(l.CST) {
			outbound = append(outbound, l)
		}
	}

	type expanded struct {
		key PeriodKey
		val RevenueValue
	}
	var rows []expanded
	for _, l := range outbound {
		base := PeriodKey{CNPJBase: l.CNPJBase(), Year: l.Year, Quarter: l.Quarter, Month: l.Month}
		cst := map[int]struct{}{l.CST: {}}
		for _, b := range bucketsFor(l) {
			base.Bucket = b
			rows = append(rows, expanded{key: base, val: RevenueValue{Value: l.ValorItem, CSTs: cst}})
		}
	}

	sums := map[PeriodKey]RevenueValue{}
	for _, r := range rows {
		if existing, ok := sums[r.key]; ok {
			sums[r.key] = existing.AddRevenue(r.val)
		} else {
			sums[r.key] = r.val
		}
	}

	totals := map[PeriodKey]decimal.Decimal{}
	for k, v := range sums {
		if k.Bucket == BucketTotal {
			tk := k
			tk.Bucket = BucketTotal
			totals[tk] = v.Value
		}
	}

	out := map[PeriodKey]RevenueValue{}
	for k, v := range sums {
		if v.Value.IsZero() {
			continue
		}
		totalKey := k
		totalKey.Bucket = BucketTotal
		if total, ok := totals[totalKey]; ok && total.IsPositive() {
			v.Percentage = v.Value.Div(total).Mul(decimal.NewFromInt(100))
		}
		out[k] = v
	}
	return out
}
