package fiscal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/efdtools/efd-pis-cofins/accumulate"
	"github.com/efdtools/efd-pis-cofins/parser"
)

// EmitAdjustmentLines implements the M100/M500 family emission of
// spec.md §4.6: up to three synthetic lines, one per non-zero component
// of {adjustment-increase, adjustment-decrease, in-period discount}, each
// a negative value except the increase.
func EmitAdjustmentLines(s *accumulate.State, header *parser.Record, reportPeriod time.Time) []*Line {
	var lines []*Line

	base := func(op int) *Line {
		l := &Line{File: header.File, FileLine: header.Line, Registro: header.Code, OperationType: op}
		fillEstablishment(s, l)
		l.Period = reportPeriod
		l.Year, l.Month, l.Quarter = reportPeriod.Year(), int(reportPeriod.Month()), QuarterOf(int(reportPeriod.Month()))
		if v, ok := header.Get("COD_CRED"); ok && !v.IsNull() {
			l.CreditCode = int(v.Int())
			l.CreditType = int(v.Int()) % 100
		}
		return l
	}

	if v := decOf(header, "VL_AJUS_ACRES"); v.IsPositive() {
		l := base(OpAdjustIncrease)
		l.ValorBC = v
		lines = append(lines, l)
	}
	if v := decOf(header, "VL_AJUS_REDUC"); v.IsPositive() {
		l := base(OpAdjustDecrease)
		l.ValorBC = v.Neg()
		lines = append(lines, l)
	}
	if v := decOf(header, "VL_CRED_DESC"); v.IsPositive() {
		l := base(OpDiscountInPeriod)
		l.ValorBC = v.Neg()
		lines = append(lines, l)
	}
	return lines
}

// EmitDetailLine implements the M105/M505 "detailing" emission of
// spec.md §4.6: one line tagged with operation-type sentinel 7, after
// correlating the PIS rate to the COFINS rate.
func EmitDetailLine(s *accumulate.State, header, detail *parser.Record, reportPeriod time.Time) *Line {
	l := &Line{File: detail.File, FileLine: detail.Line, Registro: detail.Code, OperationType: OpDetailCorrelation}
	fillEstablishment(s, l)
	l.Period = reportPeriod
	l.Year, l.Month, l.Quarter = reportPeriod.Year(), int(reportPeriod.Month()), QuarterOf(int(reportPeriod.Month()))
	l.Nature = detail.Str("NAT_BC_CRED")
	l.ValorBC = decOf(detail, "VL_BC_PIS")

	valorItem := decOf(detail, "VL_ITEM")
	cst := ""
	if v, ok := detail.Get("CST"); ok && !v.IsNull() {
		cst = v.Str()
	}

	if c, ok, _ := s.ResolveCorrelation(cst, valorItem.String(), "", ""); ok {
		if aliqPIS, err := decimal.NewFromString(c.AliqPIS); err == nil {
			l.AliqPIS = aliqPIS
		}
		if valorPIS, err := decimal.NewFromString(c.ValorPIS); err == nil {
			l.ValorPIS = valorPIS
		}
		return l
	}
	// No sibling leaf correlated this CST/value; fall back to correlating
	// the parent M100/M500's own reported rate via the static table.
	if aliqPIS, ok := CorrelatedPISFromCOFINS(decOf(header, "ALIQ_PIS")); ok {
		l.AliqPIS = aliqPIS
	} else {
		s.Warnf(detail.Line, "unresolved PIS/COFINS correlation for %s", detail.Code)
	}
	return l
}

// EmitPriorPeriodDiscount implements the 1100/1500 control-record
// emission of spec.md §4.6: at most one line (sentinel 6), only when the
// credit's origin period differs from the current reporting period and
// the discounted value is positive.
func EmitPriorPeriodDiscount(s *accumulate.State, rec *parser.Record, reportPeriod time.Time) *Line {
	value := decOf(rec, "VL_CRED_PIS_DESC")
	if !value.IsPositive() {
		return nil
	}

	origin, ok := rec.Get("PER_APU_CRED")
	if !ok || origin.IsNull() {
		return nil
	}
	if sameMonth(origin.Date(), reportPeriod) {
		return nil
	}

	l := &Line{File: rec.File, FileLine: rec.Line, Registro: rec.Code, OperationType: OpDiscountPriorPer}
	fillEstablishment(s, l)
	l.Period = origin.Date()
	l.Year, l.Month, l.Quarter = origin.Date().Year(), int(origin.Date().Month()), QuarterOf(int(origin.Date().Month()))
	l.ValorBC = value.Neg()
	if v, ok := rec.Get("COD_CRED"); ok && !v.IsNull() {
		l.CreditCode = int(v.Int())
		l.CreditType = int(v.Int()) % 100
	}
	return l
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
