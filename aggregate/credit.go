package aggregate

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/efdtools/efd-pis-cofins/fiscal"
)

var hundred = decimal.NewFromInt(100)

// statutoryCreditTypeNatures is the closed set of credit-base natures a
// "partial sum" row (stage 2) may legitimately carry: 100 plus each
// statutory credit type {1..9, 99} (spec.md's invariant on credit-type
// codes), expressed as natureza_bc = tipo_de_credito + 100.
var statutoryCreditTypeNatures = map[string]struct{}{
	"101": {}, "102": {}, "103": {}, "104": {}, "105": {},
	"106": {}, "107": {}, "108": {}, "109": {}, "199": {},
}

// Row is one output row of the credit reduction: a key (possibly
// carrying a synthetic CST sentinel ≥ 900) paired with its value.
type Row struct {
	Key   Key
	Value Value
}

// SyntheticCST reports whether r's CST is an aggregator-introduced
// sentinel rather than a SPED-registered code (spec.md §4.7: "Synthetic
// CST sentinels ≥ 900 are nulled in the output").
func (r Row) SyntheticCST() bool {
	return r.Key.CST >= 900
}

func natureKey(n int) string { return strconv.Itoa(n) }

// CreditReduction implements the seven-stage credit reduction of
// spec.md §4.7, grounded on analise_dos_creditos.rs's
// consolidar_natureza_da_base_de_calculo pipeline: apportionment,
// partial sum, adjustments & discounts, credit apuration, after-
// adjustments/after-discounts, and grand-sum/balance passes, finished
// by quarterly-total synthesis. revenue is the already-computed revenue
// segregation for the same line set, consulted by applyRevenueFallback
// for inbound rows that carry no sentinel-7 apportionment sibling.
func CreditReduction(lines []*fiscal.Line, revenue map[PeriodKey]RevenueValue) []Row {
	base := buildCreditBase(lines)
	applyApportionment(base, lines)
	applyRevenueFallback(base, revenue)

	mergeInto(base, partialSumPass(base))
	mergeInto(base, adjustmentsPass(lines))
	mergeInto(base, discountsPass(lines))

	mergeInto(base, creditApurationPass(base))
	mergeInto(base, afterAdjustmentsPass(base))
	mergeInto(base, afterDiscountsPass(base))

	mergeInto(base, grandSumPass(base))
	mergeInto(base, balancePass(base))

	rows := make([]Row, 0, len(base))
	for k, v := range base {
		rows = append(rows, Row{Key: k, Value: v})
	}
	rows = append(rows, quarterlyTotals(rows)...)
	return rows
}

func mergeInto(dst, src map[Key]Value) {
	for k, v := range src {
		if existing, ok := dst[k]; ok {
			dst[k] = existing.Add(v)
		} else {
			dst[k] = v
		}
	}
}

// buildCreditBase groups every inbound-CST (50..=66) or apportionment-
// detail (sentinel 7) line by Key, summing ValorItem/ValorBC.
func buildCreditBase(lines []*fiscal.Line) map[Key]Value {
	var creditLines []*fiscal.Line
	for _, l := range lines {
		if IsInboundCST(l.CST) || l.OperationType == fiscal.OpDetailCorrelation {
			creditLines = append(creditLines, l)
		}
	}
	return Reduce(creditLines,
		func(l *fiscal.Line) (Key, bool) { return KeyOf(l), true },
		func(l *fiscal.Line, k Key) Value { return Value{ValorItem: l.ValorItem, ValorBC: l.ValorBC} },
		Value.Add,
	)
}

// applyApportionment is the distribuir_creditos_rateados pass: every
// sentinel-7 detail line carries a COD_CRED whose hundreds digit (1, 2,
// or 3) names the bucket its sibling inbound-CST row's base-of-
// calculation should be assigned to. The sibling is found by replaying
// the detail line's key with the operation type forced to OpIn, exactly
// as the inbound leaf itself would have keyed.
func applyApportionment(base map[Key]Value, lines []*fiscal.Line) {
	for _, l := range lines {
		if l.OperationType != fiscal.OpDetailCorrelation {
			continue
		}
		key := KeyOf(l)
		key.OperationType = fiscal.OpIn
		existing, ok := base[key]
		if !ok {
			continue
		}
		switch l.CreditCode / 100 {
		case 1:
			existing.RBNCTrib = l.ValorBC
		case 2:
			existing.RBNCNTrib = l.ValorBC
		case 3:
			existing.RBNCExp = l.ValorBC
		}
		base[key] = existing
	}
}

// applyRevenueFallback implements the second half of spec.md's Credit
// analyzer bullet 9 and §8 scenario 4: an inbound credit-base row left
// untouched by applyApportionment (no sentinel-7 sibling named a bucket
// for it) has its base-of-calculation split across rbnc_trib/rbnc_ntrib/
// rbnc_exp/rbcum by that row's period's revenue mix, read back from the
// already-computed revenue segregation.
func applyRevenueFallback(base map[Key]Value, revenue map[PeriodKey]RevenueValue) {
	for k, v := range base {
		if !IsInboundCST(k.CST) || k.OperationType != fiscal.OpIn {
			continue
		}
		if !v.RBNCTrib.IsZero() || !v.RBNCNTrib.IsZero() || !v.RBNCExp.IsZero() || !v.RBCum.IsZero() {
			continue
		}
		if v.ValorBC.IsZero() {
			continue
		}
		period := PeriodKey{CNPJBase: k.CNPJBase, Year: k.Year, Quarter: k.Quarter, Month: k.Month}
		v.RBNCTrib = revenueShare(v.ValorBC, revenue, period, BucketNonCumTributed)
		v.RBNCNTrib = revenueShare(v.ValorBC, revenue, period, BucketNonCumNonTributed)
		v.RBNCExp = revenueShare(v.ValorBC, revenue, period, BucketNonCumExported)
		v.RBCum = revenueShare(v.ValorBC, revenue, period, BucketCumulative)
		base[k] = v
	}
}

func revenueShare(base decimal.Decimal, revenue map[PeriodKey]RevenueValue, period PeriodKey, bucket RevenueBucket) decimal.Decimal {
	period.Bucket = bucket
	rv, ok := revenue[period]
	if !ok || rv.Percentage.IsZero() {
		return decimal.Zero
	}
	return base.Mul(rv.Percentage).Div(hundred)
}

// partialSumPass is somar_base_de_calculo_valor_parcial: relabel each
// credit-typed row to synthetic CST 910 and nature `credit_type + 100`,
// replacing its base-of-calculation with the sum of the three
// non-cumulative buckets computed by applyApportionment.
func partialSumPass(base map[Key]Value) map[Key]Value {
	out := map[Key]Value{}
	for k, v := range base {
		if k.CreditType == 0 {
			continue
		}
		k2 := k
		k2.CST = 910
		k2.Nature = natureKey(k.CreditType + 100)

		nonCum := v
		nonCum.ValorBC = v.RBNCTrib.Add(v.RBNCNTrib).Add(v.RBNCExp)
		if existing, ok := out[k2]; ok {
			out[k2] = existing.Add(nonCum)
		} else {
			out[k2] = nonCum
		}
	}
	return out
}

// rateadoPass implements the shared shape of distribuir_ajustes_rateados
// and distribuir_descontos_rateados: relabel each qualifying line's
// nature to `10*tipo_de_operacao + delta` (delta 1 for a PIS-family
// record, 5 for COFINS), then distribute its value into the
// trib/ntrib/exp bucket named by the hundreds digit of COD_CRED.
func rateadoPass(lines []*fiscal.Line, ops map[int]struct{}) map[Key]Value {
	out := map[Key]Value{}
	for _, l := range lines {
		if _, ok := ops[l.OperationType]; !ok {
			continue
		}
		delta := deltaByRegistro(l)
		k := KeyOf(l)
		k.Nature = natureKey(10*l.OperationType + delta)

		v := Value{ValorItem: l.ValorItem, ValorBC: l.ValorItem}
		switch l.CreditCode / 100 {
		case 1:
			v.RBNCTrib = l.ValorItem
		case 2:
			v.RBNCNTrib = l.ValorItem
		case 3:
			v.RBNCExp = l.ValorItem
		}
		if existing, ok := out[k]; ok {
			out[k] = existing.Add(v)
		} else {
			out[k] = v
		}
	}
	return out
}

var adjustmentOps = map[int]struct{}{fiscal.OpAdjustIncrease: {}, fiscal.OpAdjustDecrease: {}}
var discountOps = map[int]struct{}{fiscal.OpDiscountInPeriod: {}, fiscal.OpDiscountPriorPer: {}}

func adjustmentsPass(lines []*fiscal.Line) map[Key]Value {
	return rateadoPass(lines, adjustmentOps)
}

func discountsPass(lines []*fiscal.Line) map[Key]Value {
	return rateadoPass(lines, discountOps)
}

// deltaByRegistro distinguishes a COFINS-family record (M500/1500) from
// a PIS-family one (M100/1100) when the line carries no PIS rate of its
// own to disambiguate by.
func deltaByRegistro(l *fiscal.Line) int {
	if l.Registro == "M500" || l.Registro == "1500" {
		return 5
	}
	return 1
}

// creditApurationPass is apurar_credito_das_contribuicoes: for every
// partial-sum row (synthetic nature in the statutory credit-type set),
// compute the apurated credit as base-of-calculation times rate/100,
// once for PIS (CST 920, nature 201) and once for COFINS (CST 930,
// nature 205).
func creditApurationPass(base map[Key]Value) map[Key]Value {
	out := map[Key]Value{}
	for k, v := range base {
		if _, ok := statutoryCreditTypeNatures[k.Nature]; !ok {
			continue
		}
		if k.AliqPIS != "" {
			k2 := k
			k2.CST, k2.Nature, k2.AliqCOFINS = 920, "201", ""
			accumulateScaled(out, k2, v, k.AliqPIS)
		}
		if k.AliqCOFINS != "" {
			k2 := k
			k2.CST, k2.Nature, k2.AliqPIS = 930, "205", ""
			accumulateScaled(out, k2, v, k.AliqCOFINS)
		}
	}
	return out
}

func accumulateScaled(out map[Key]Value, k Key, v Value, rateStr string) {
	rate, err := decimalFromFixed4(rateStr)
	if err != nil {
		return
	}
	scaled := v.Scale(rate.Div(hundred))
	if existing, ok := out[k]; ok {
		out[k] = existing.Add(scaled)
	} else {
		out[k] = scaled
	}
}

// afterAdjustmentsPass is calcular_credito_apos_ajustes: fold the
// apurated credit (201/205) together with the matching adjustment rows
// (31/41 for PIS, 35/45 for COFINS) into natures 211/215, clearing the
// rate fields since the row no longer belongs to one rate bucket.
func afterAdjustmentsPass(base map[Key]Value) map[Key]Value {
	out := map[Key]Value{}
	for k, v := range base {
		pis := k.Nature == "201" || k.Nature == "31" || k.Nature == "41"
		cof := k.Nature == "205" || k.Nature == "35" || k.Nature == "45"
		if !pis && !cof {
			continue
		}
		k2 := k
		k2.AliqPIS, k2.AliqCOFINS = "", ""
		if pis {
			k2.CST, k2.Nature = 920, "211"
			if k.Nature == "31" {
				k2.OperationType = fiscal.OpAdjustIncrease
			} else if k.Nature == "41" {
				k2.OperationType = fiscal.OpAdjustDecrease
			}
		} else {
			k2.CST, k2.Nature = 930, "215"
			if k.Nature == "35" {
				k2.OperationType = fiscal.OpAdjustIncrease
			} else if k.Nature == "45" {
				k2.OperationType = fiscal.OpAdjustDecrease
			}
		}
		if existing, ok := out[k2]; ok {
			out[k2] = existing.Add(v)
		} else {
			out[k2] = v
		}
	}
	return out
}

// afterDiscountsPass is calcular_credito_apos_descontos: the same
// fold, one stage further, combining natures 211/215 with discount rows
// 51/61 (PIS) and 55/65 (COFINS) into 221/225.
func afterDiscountsPass(base map[Key]Value) map[Key]Value {
	out := map[Key]Value{}
	for k, v := range base {
		pis := k.Nature == "211" || k.Nature == "51" || k.Nature == "61"
		cof := k.Nature == "215" || k.Nature == "55" || k.Nature == "65"
		if !pis && !cof {
			continue
		}
		k2 := k
		k2.AliqPIS, k2.AliqCOFINS = "", ""
		if pis {
			k2.CST, k2.Nature = 920, "221"
			if k.Nature == "51" {
				k2.OperationType = fiscal.OpDiscountInPeriod
			} else if k.Nature == "61" {
				k2.OperationType = fiscal.OpDiscountPriorPer
			}
		} else {
			k2.CST, k2.Nature = 930, "225"
			if k.Nature == "55" {
				k2.OperationType = fiscal.OpDiscountInPeriod
			} else if k.Nature == "65" {
				k2.OperationType = fiscal.OpDiscountPriorPer
			}
		}
		if existing, ok := out[k2]; ok {
			out[k2] = existing.Add(v)
		} else {
			out[k2] = v
		}
	}
	return out
}

// grandSumPass is somar_base_de_calculo_valor_total: every partial-sum
// row (statutory credit-type nature) collapses into a single nature-300
// row per (CNPJ-base, year, quarter, month), credit type pinned to the
// sentinel 100.
func grandSumPass(base map[Key]Value) map[Key]Value {
	out := map[Key]Value{}
	for k, v := range base {
		if _, ok := statutoryCreditTypeNatures[k.Nature]; !ok {
			continue
		}
		k2 := Key{CNPJBase: k.CNPJBase, Year: k.Year, Quarter: k.Quarter, Month: k.Month, CreditType: 100, CST: k.CST, Nature: "300"}
		if existing, ok := out[k2]; ok {
			out[k2] = existing.Add(v)
		} else {
			out[k2] = v
		}
	}
	return out
}

// balancePass is calcular_saldo_de_credito_passivel_de_ressarcimento:
// the after-discounts rows (221/225) become the final refundable-credit
// balance, natures 301/305.
func balancePass(base map[Key]Value) map[Key]Value {
	out := map[Key]Value{}
	for k, v := range base {
		if k.Nature != "221" && k.Nature != "225" {
			continue
		}
		k2 := Key{CNPJBase: k.CNPJBase, Year: k.Year, Quarter: k.Quarter, Month: k.Month, CreditType: 100, CST: k.CST}
		if k.Nature == "221" {
			k2.Nature = "301"
		} else {
			k2.Nature = "305"
		}
		if existing, ok := out[k2]; ok {
			out[k2] = existing.Add(v)
		} else {
			out[k2] = v
		}
	}
	return out
}

// quarterlyTotals implements spec.md §4.7's stage 7: when a CNPJ-base's
// rows span more than one calendar month, append a synthetic row per
// (CNPJ-base, quarter, sentinel month 13) summing that quarter's rows,
// as a visual grouping marker.
func quarterlyTotals(rows []Row) []Row {
	months := map[string]map[int]struct{}{}
	for _, r := range rows {
		cnpj := r.Key.CNPJBase
		if months[cnpj] == nil {
			months[cnpj] = map[int]struct{}{}
		}
		months[cnpj][r.Key.Month] = struct{}{}
	}

	type qkey struct {
		cnpj    string
		year    int
		quarter int
	}
	sums := map[qkey]Value{}
	seen := map[qkey]Key{}
	for _, r := range rows {
		if len(months[r.Key.CNPJBase]) < 2 {
			continue
		}
		qk := qkey{cnpj: r.Key.CNPJBase, year: r.Key.Year, quarter: r.Key.Quarter}
		if existing, ok := sums[qk]; ok {
			sums[qk] = existing.Add(r.Value)
		} else {
			sums[qk] = r.Value
			seen[qk] = r.Key
		}
	}

	var out []Row
	for qk, v := range sums {
		k := seen[qk]
		k.Month = 13
		out = append(out, Row{Key: k, Value: v})
	}
	return out
}

func decimalFromFixed4(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
