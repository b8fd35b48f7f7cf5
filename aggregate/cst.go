package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/efdtools/efd-pis-cofins/fiscal"
)

// CSTKey is the grouping key of spec.md §4.8's CST-consolidation
// reduction: coarser than Key, it drops everything but the period and
// the CST itself.
type CSTKey struct {
	CNPJBase string
	Year     int
	Quarter  int
	Month    int
	CST      int
}

// CSTValue is the summed row for one CSTKey.
type CSTValue struct {
	ValorItem   decimal.Decimal
	ValorBC     decimal.Decimal
	ValorPIS    decimal.Decimal
	ValorCOFINS decimal.Decimal
}

// AddCST returns the element-wise sum of v and o.
func (v CSTValue) AddCST(o CSTValue) CSTValue {
	return CSTValue{
		ValorItem:   v.ValorItem.Add(o.ValorItem),
		ValorBC:     v.ValorBC.Add(o.ValorBC),
		ValorPIS:    v.ValorPIS.Add(o.ValorPIS),
		ValorCOFINS: v.ValorCOFINS.Add(o.ValorCOFINS),
	}
}

// CSTSentinelOutbound and CSTSentinelInbound are the two synthetic rows
// spec.md §4.8 appends per period: the sum over outbound CSTs (1..=49)
// and over inbound CSTs (50..=99) respectively.
const (
	CSTSentinelOutbound = 490
	CSTSentinelInbound  = 980
)

// ConsolidateCST implements spec.md §4.8: group lines of operation type
// in/out by (CNPJ-base, year, quarter, month, CST), then append the two
// synthetic summary rows per period.
func ConsolidateCST(lines []*fiscal.Line) map[CSTKey]CSTValue {
	var filtered []*fiscal.Line
	for _, l := range lines {
		if l.OperationType == fiscal.OpIn || l.OperationType == fiscal.OpOut {
			filtered = append(filtered, l)
		}
	}

	base := Reduce(filtered,
		func(l *fiscal.Line) (CSTKey, bool) { return cstKeyOf(l), true },
		func(l *fiscal.Line, k CSTKey) CSTValue {
			return CSTValue{ValorItem: l.ValorItem, ValorBC: l.ValorBC, ValorPIS: l.ValorPIS, ValorCOFINS: l.ValorCOFINS}
		},
		CSTValue.AddCST,
	)

	out := make(map[CSTKey]CSTValue, len(base)+len(base)/25+2)
	sentinels := map[CSTKey]CSTValue{}
	for ck, v := range base {
		out[ck] = v

		var sentinel CSTKey
		switch {
		case IsOutboundCST(ck.CST):
			sentinel = CSTKey{CNPJBase: ck.CNPJBase, Year: ck.Year, Quarter: ck.Quarter, Month: ck.Month, CST: CSTSentinelOutbound}
		case ck.CST >= 50 && ck.CST <= 99:
			sentinel = CSTKey{CNPJBase: ck.CNPJBase, Year: ck.Year, Quarter: ck.Quarter, Month: ck.Month, CST: CSTSentinelInbound}
		default:
			continue
		}
		if existing, ok := sentinels[sentinel]; ok {
			sentinels[sentinel] = existing.AddCST(v)
		} else {
			sentinels[sentinel] = v
		}
	}
	for k, v := range sentinels {
		out[k] = v
	}
	return out
}

func cstKeyOf(l *fiscal.Line) CSTKey {
	return CSTKey{CNPJBase: l.CNPJBase(), Year: l.Year, Quarter: l.Quarter, Month: l.Month, CST: l.CST}
}
