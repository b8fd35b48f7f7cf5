package aggregate

import "github.com/efdtools/efd-pis-cofins/fiscal"

// Key is the AggregationKey of spec.md §3: the composite identity that
// the credit-reduction hash map groups enriched lines by. Rates are kept
// as fixed-4 decimal strings rather than decimal.Decimal because the
// latter embeds a *big.Int pointer and is unsafe as a map-key field —
// structurally equal decimals from different parses would not compare
// equal under Go's built-in `==`.
type Key struct {
	CNPJBase      string
	Year          int
	Quarter       int
	Month         int
	OperationType int
	CreditType    int
	CST           int
	HasCFOP       bool
	CFOP          int
	AliqPIS       string
	AliqCOFINS    string
	Nature        string
}

// KeyOf builds the Key a credit-reduction line collapses into.
func KeyOf(l *fiscal.Line) Key {
	k := Key{
		CNPJBase:      l.CNPJBase(),
		Year:          l.Year,
		Quarter:       l.Quarter,
		Month:         l.Month,
		OperationType: l.OperationType,
		CreditType:    l.CreditType,
		CST:           l.CST,
		HasCFOP:       l.HasCFOP,
		CFOP:          l.CFOP,
		Nature:        l.Nature,
	}
	if !l.AliqPIS.IsZero() {
		k.AliqPIS = l.AliqPIS.StringFixed(4)
	}
	if !l.AliqCOFINS.IsZero() {
		k.AliqCOFINS = l.AliqCOFINS.StringFixed(4)
	}
	// CFOP discriminates revenue by origin, not credit by nature: drop it
	// from the key for credit-bearing CSTs so per-CFOP leaf rows collapse
	// into one credit-reduction group.
	if IsInboundCST(l.CST) {
		k.HasCFOP, k.CFOP = false, 0
	}
	return k
}

// PeriodKey is the key of the revenue segregator (spec.md §3).
type PeriodKey struct {
	CNPJBase string
	Year     int
	Quarter  int
	Month    int
	Bucket   RevenueBucket
}

// IsInboundCST reports whether cst belongs to the credit-reduction's
// inbound range (spec.md §4.7: 50..=66).
func IsInboundCST(cst int) bool {
	return cst >= 50 && cst <= 66
}

// IsOutboundCST reports whether cst belongs to the revenue-reduction's
// outbound range (spec.md §4.7: 1..=49).
func IsOutboundCST(cst int) bool {
	return cst >= 1 && cst <= 49
}

// creditReductionSentinels are the synthetic operation-type sentinels
// that also enter the credit-reduction grouping alongside inbound CSTs
// (adjustment/decrease/discount/detail lines — spec.md §4.6).
var creditReductionSentinels = map[int]struct{}{
	fiscal.OpAdjustIncrease:     {},
	fiscal.OpAdjustDecrease:     {},
	fiscal.OpDiscountInPeriod:   {},
	fiscal.OpDiscountPriorPer:   {},
	fiscal.OpDetailCorrelation:  {},
}

// EntersCreditReduction reports whether l should be grouped into the
// credit reduction of spec.md §4.7.
func EntersCreditReduction(l *fiscal.Line) bool {
	if IsInboundCST(l.CST) {
		return true
	}
	_, ok := creditReductionSentinels[l.OperationType]
	return ok
}
