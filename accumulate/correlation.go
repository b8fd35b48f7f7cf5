package accumulate

import (
	"fmt"

	"github.com/efdtools/efd-pis-cofins/parser"
)

// correlationKey builds the weak ("CST_VL_ITEM") or strong
// ("CST_VL_ITEM_CFOP_participant") PIS<->COFINS correlation key of
// spec.md §4.5. An absent CFOP/participant component degrades the strong
// key toward the weak one rather than panicking — correlation-source
// record types do not all carry a participant field.
func correlationKey(cst, valorItem string, cfop, participant string) string {
	if cfop == "" && participant == "" {
		return fmt.Sprintf("%s_%s", cst, valorItem)
	}
	return fmt.Sprintf("%s_%s_%s_%s", cst, valorItem, cfop, participant)
}

func (s *State) feedCorrelation(rec *parser.Record) {
	cst := rec.Str("CST")
	if cst == "" {
		return
	}
	vlItem, ok := rec.Get("VL_ITEM")
	if !ok || vlItem.IsNull() {
		return
	}
	aliqPIS, hasAliq := rec.Get("ALIQ_PIS")
	vlPIS, hasVl := rec.Get("VL_PIS")
	if !hasAliq || aliqPIS.IsNull() || !hasVl || vlPIS.IsNull() {
		return
	}

	entry := Correlated{AliqPIS: aliqPIS.Dec().String(), ValorPIS: vlPIS.Dec().String()}
	valorItemStr := vlItem.Dec().String()

	weak := correlationKey(cst, valorItemStr, "", "")
	s.Correlation[weak] = entry

	cfop := rec.Str("CFOP")
	participant := rec.Str("CNPJ_CPF_PART")
	if cfop != "" || participant != "" {
		strong := correlationKey(cst, valorItemStr, cfop, participant)
		s.Correlation[strong] = entry
	}
}

// ResolveCorrelation looks up the PIS-rate/PIS-value pair correlated to a
// COFINS-bearing leaf, trying the strong key before the weak key
// (spec.md §4.5, a partial function). The third return value reports
// whether the match fell back to the weak key, so a caller can populate
// the message buffer with a "matched on weak key" warning per spec.md's
// Design Notes — the two outcomes must stay distinguishable rather than
// collapsing into a single composite key.
func (s *State) ResolveCorrelation(cst, valorItem, cfop, participant string) (Correlated, bool, bool) {
	if cfop != "" || participant != "" {
		if c, ok := s.Correlation[correlationKey(cst, valorItem, cfop, participant)]; ok {
			return c, true, false
		}
	}
	c, ok := s.Correlation[correlationKey(cst, valorItem, "", "")]
	return c, ok, ok
}
