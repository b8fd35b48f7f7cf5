package accumulate

import (
	"github.com/efdtools/efd-pis-cofins/parser"
)

// Feed threads one record through the accumulator, updating whichever
// directory, header register, or correlation entry it contributes to.
// Leaf records (anything not a directory/header/correlation source) are a
// no-op here — they are handled by the line emitter in package fiscal.
func (s *State) Feed(rec *parser.Record) {
	switch rec.Code {
	case "0000":
		s.ReportCNPJ = rec.Str("CNPJ")
		if v, ok := rec.Get("DT_INI"); ok && !v.IsNull() {
			s.PeriodStart = v.Date()
		}
		if v, ok := rec.Get("DT_FIM"); ok && !v.IsNull() {
			s.PeriodEnd = v.Date()
		}

	case "0140":
		s.Establishments[rec.Str("COD_EST")] = rec.Str("NOME")
		if cnpj := rec.Str("CNPJ"); cnpj != "" {
			s.EstablishmentByCNPJ[cnpj] = rec.Str("NOME")
			s.CurrentCNPJ = cnpj
		}

	case "0150":
		p := Participant{Name: rec.Str("NOME"), CNPJ: rec.Str("CNPJ"), CPF: rec.Str("CPF")}
		s.Participants[rec.Str("COD_PART")] = p
		if p.CNPJ != "" {
			s.ReverseCNPJ[p.CNPJ] = p.Name
		}
		if p.CPF != "" {
			s.ReverseCPF[p.CPF] = p.Name
		}

	case "0200":
		s.Products[rec.Str("COD_ITEM")] = Product{
			Description: rec.Str("DESCR_ITEM"),
			NCM:         rec.Str("COD_NCM"),
		}

	case "0400":
		s.Natures[rec.Str("COD_NAT")] = rec.Str("DESCR_NAT")

	case "0450":
		s.Complementary[rec.Str("COD_INF")] = rec.Str("TXT")

	case "0500":
		s.Accounts[rec.Str("COD_CTA")] = Account{Name: rec.Str("NOME_CTA")}

	default:
		if BlockOpeners[rec.Code] {
			if cnpj := rec.Str("CNPJ"); cnpj != "" {
				s.CurrentCNPJ = cnpj
			}
			return
		}
		if HeaderFamilies[rec.Code] {
			s.Headers[rec.Code] = rec
			delete(s.Deferred, rec.Code)
			return
		}
		if CorrelationSources[rec.Code] {
			s.feedCorrelation(rec)
		}
	}
}

// Header returns the most recently seen header record for the given
// leaf's parent family, and whether one is currently in scope.
func (s *State) Header(leafCode string) (*parser.Record, bool) {
	family, ok := ParentOf[leafCode]
	if !ok {
		return nil, false
	}
	rec, ok := s.Headers[family]
	return rec, ok
}
