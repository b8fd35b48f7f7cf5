package fiscal

import (
	"github.com/shopspring/decimal"

	"github.com/efdtools/efd-pis-cofins/accumulate"
	"github.com/efdtools/efd-pis-cofins/parser"
)

// Emit builds one enriched Line from a leaf record, merging current
// header, leaf, resolved directory lookups, and derived fields per the
// precedence rules of spec.md §4.6. The accumulator state is read-only
// here; deferred joining and synthetic-line emission are handled by the
// caller (the per-file run loop in package efd) using the companion
// helpers in this file.
func Emit(s *accumulate.State, leaf *parser.Record) *Line {
	l := &Line{File: leaf.File, FileLine: leaf.Line, Registro: leaf.Code}

	fillEstablishment(s, l)
	fillParticipant(s, leaf, l)
	fillHeader(s, leaf, l)
	fillItem(s, leaf, l)
	fillAccount(s, leaf, l)
	fillComplementary(s, leaf, l)
	fillPeriod(s, leaf, l)
	fillCSTAndCFOP(leaf, l)
	fillOperationType(leaf, l)
	fillOriginIndicator(leaf, l)
	fillNature(leaf, l)
	fillValues(s, leaf, l)
	fillCreditType(leaf, l)

	return l
}

func fillEstablishment(s *accumulate.State, l *Line) {
	cnpj := s.CurrentCNPJ
	if cnpj == "" {
		cnpj = s.ReportCNPJ
	}
	l.EstabelecimentoCNPJ = cnpj
	if name, ok := s.EstablishmentByCNPJ[cnpj]; ok {
		l.EstabelecimentoNome = name
	}
}

func fillParticipant(s *accumulate.State, leaf *parser.Record, l *Line) {
	if cod := leaf.Str("COD_PART"); cod != "" {
		if p, ok := s.Participants[cod]; ok {
			l.ParticipanteCNPJ, l.ParticipanteCPF, l.ParticipanteNome = p.CNPJ, p.CPF, p.Name
			return
		}
	}
	if cnpj := leaf.Str("CNPJ_CPF_PART"); len(cnpj) == 14 {
		l.ParticipanteCNPJ = cnpj
		if name, ok := s.ReverseCNPJ[cnpj]; ok {
			l.ParticipanteNome = name
		} else if len(cnpj) >= 8 {
			if name, ok := s.ReverseCNPJ[cnpj[:8]]; ok {
				l.ParticipanteNome = name
			}
		}
		return
	}
	if cpf := leaf.Str("CNPJ_CPF_PART"); len(cpf) == 11 {
		l.ParticipanteCPF = cpf
		if name, ok := s.ReverseCPF[cpf]; ok {
			l.ParticipanteNome = name
		}
	}
}

func fillHeader(s *accumulate.State, leaf *parser.Record, l *Line) {
	header, ok := s.Header(leaf.Code)
	if !ok {
		return
	}
	l.NumDoc = int(intOrZero(header, "NUM_DOC"))
	l.ChaveDoc = header.Str("CHV_NFE")
	l.Modelo = header.Str("COD_MOD")
	if v, ok := header.Get("DT_DOC"); ok && !v.IsNull() {
		l.DataEmissao = v.Date()
	}
	if v, ok := header.Get("DT_ES"); ok && !v.IsNull() {
		l.DataEntrada = v.Date()
	} else if v, ok := header.Get("DT_A_P"); ok && !v.IsNull() {
		l.DataEntrada = v.Date()
	}
}

func fillItem(s *accumulate.State, leaf *parser.Record, l *Line) {
	if v, ok := leaf.Get("NUM_ITEM"); ok && !v.IsNull() {
		l.NumItem = int(v.Int())
	}
	cod := leaf.Str("COD_ITEM")
	if cod == "" {
		return
	}
	if p, ok := s.Products[cod]; ok {
		l.DescrItem = p.Description
		l.CodNCM = p.NCM
		l.TipoItem = p.Type
	}
}

func fillAccount(s *accumulate.State, leaf *parser.Record, l *Line) {
	cod := leaf.Str("COD_CTA")
	if cod == "" {
		return
	}
	if a, ok := s.Accounts[cod]; ok {
		l.NomeDaConta = a.Name
	}
}

func fillComplementary(s *accumulate.State, leaf *parser.Record, l *Line) {
	own := leaf.Str("DESCR_COMPL")
	info := s.Complementary[leaf.Str("COD_INF")]
	switch {
	case info != "" && own != "":
		l.Complementar = info + " & " + own
	case info != "":
		l.Complementar = info
	default:
		l.Complementar = own
	}
}

func fillPeriod(s *accumulate.State, leaf *parser.Record, l *Line) {
	period := s.PeriodStart
	if v, ok := leaf.Get("PER_APU_CRED"); ok && !v.IsNull() {
		period = v.Date()
	}
	l.Period = period
	if period.IsZero() {
		return
	}
	l.Year = period.Year()
	l.Month = int(period.Month())
	l.Quarter = QuarterOf(l.Month)
}

func fillCSTAndCFOP(leaf *parser.Record, l *Line) {
	if v, ok := leaf.Get("CST"); ok && !v.IsNull() {
		l.CST, l.HasCST = int(v.Int()), true
	}
	if v, ok := leaf.Get("CFOP"); ok && !v.IsNull() {
		l.CFOP, l.HasCFOP = int(v.Int()), true
	}
}

func fillOperationType(leaf *parser.Record, l *Line) {
	if v, ok := leaf.Get("IND_OPER"); ok && !v.IsNull() {
		l.OperationType = int(v.Int())
		return
	}
	if l.HasCST {
		if l.CST >= 1 && l.CST <= 49 {
			l.OperationType = OpOut
		} else if l.CST >= 50 && l.CST <= 99 {
			l.OperationType = OpIn
		}
	}
}

func fillOriginIndicator(leaf *parser.Record, l *Line) {
	if v, ok := leaf.Get("IND_ORIG"); ok && !v.IsNull() {
		l.OriginIndicator = int(v.Int())
		return
	}
	if l.HasCFOP && ExportingCFOP(l.CFOP) {
		l.OriginIndicator = 1
	}
}

func fillNature(leaf *parser.Record, l *Line) {
	if v, ok := leaf.Get("NAT_BC_CRED"); ok && !v.IsNull() {
		l.Nature = v.Str()
		return
	}
	if l.HasCFOP && l.HasCST {
		if nat, ok := NatureForCFOP(l.CFOP, l.CST); ok {
			l.Nature = nat
		}
	}
}

// fillValues fills the monetary fields, repairing PIS rate/value from a
// sibling record via the accumulator's correlation map (spec.md §4.5,
// §8 scenario 3) when leaf carries no ALIQ_PIS/VL_PIS of its own — true
// of C195 and the other leaves whose layout has no PIS columns.
func fillValues(s *accumulate.State, leaf *parser.Record, l *Line) {
	l.ValorItem = decOf(leaf, "VL_ITEM")
	l.ValorBC = decOf(leaf, "VL_BC")
	l.AliqCOFINS = decOf(leaf, "ALIQ_COFINS")
	l.ValorCOFINS = decOf(leaf, "VL_COFINS")
	l.ValorBCICMS = decOf(leaf, "VL_BC_ICMS")
	l.AliqICMS = decOf(leaf, "ALIQ_ICMS")
	l.ValorICMS = decOf(leaf, "VL_ICMS")

	aliqPIS, hasAliqPIS := leaf.Get("ALIQ_PIS")
	vlPIS, hasVlPIS := leaf.Get("VL_PIS")
	if hasAliqPIS && !aliqPIS.IsNull() && hasVlPIS && !vlPIS.IsNull() {
		l.AliqPIS = aliqPIS.Dec()
		l.ValorPIS = vlPIS.Dec()
		return
	}

	cst := leaf.Str("CST")
	if cst == "" {
		return
	}
	c, ok, weak := s.ResolveCorrelation(cst, l.ValorItem.String(), leaf.Str("CFOP"), leaf.Str("CNPJ_CPF_PART"))
	if !ok {
		return
	}
	if v, err := decimal.NewFromString(c.AliqPIS); err == nil {
		l.AliqPIS = v
	}
	if v, err := decimal.NewFromString(c.ValorPIS); err == nil {
		l.ValorPIS = v
	}
	if weak {
		s.Warnf(leaf.Line, "%s PIS rate/value repaired from sibling via weak correlation key", leaf.Code)
	}
}

func fillCreditType(leaf *parser.Record, l *Line) {
	aliqPIS, hasPIS := leaf.Get("ALIQ_PIS")
	aliqCOFINS, hasCOFINS := leaf.Get("ALIQ_COFINS")
	hasRates := hasPIS && !aliqPIS.IsNull() && hasCOFINS && !aliqCOFINS.IsNull()

	var codCred int64
	var hasCod bool
	if v, ok := leaf.Get("COD_CRED"); ok && !v.IsNull() {
		codCred, hasCod = v.Int(), true
	}

	ct, ok := DeriveCreditType(l.CST, aliqPIS.Dec(), aliqCOFINS.Dec(), hasRates, l.OriginIndicator, int(codCred), hasCod)
	if ok {
		l.CreditType = ct
	}
	if hasCod {
		l.CreditCode = int(codCred)
	}
}

func intOrZero(rec *parser.Record, name string) int64 {
	v, ok := rec.Get(name)
	if !ok || v.IsNull() {
		return 0
	}
	return v.Int()
}

func decOf(rec *parser.Record, name string) decimal.Decimal {
	v, ok := rec.Get(name)
	if !ok || v.IsNull() {
		return decimal.Zero
	}
	return v.Dec()
}
