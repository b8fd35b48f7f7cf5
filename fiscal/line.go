// Package fiscal holds the enriched, report-ready row emitted once per leaf
// record (spec.md §3, the DocsFiscais entity) and the emitter that builds
// it by merging header, leaf, resolved lookups, and derived fields
// (spec.md §4.6).
package fiscal

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel operation-type values for synthetic lines that have no natural
// IND_OPER (spec.md §4.6's M100/M500/M105/M505/1100/1500 family).
const (
	OpOut               = 1 // outbound, CST 1..49
	OpIn                = 2 // inbound, CST 50..99
	OpAdjustIncrease    = 3
	OpAdjustDecrease    = 4
	OpDiscountInPeriod  = 5
	OpDiscountPriorPer  = 6
	OpDetailCorrelation = 7
	OpOriginOverride    = 8
)

// Line is one row of the enriched-line table: the flat, report-ready
// EnrichedLine entity of spec.md §3, field order matching the authoritative
// DocsFiscais layout this was distilled from.
type Line struct {
	FileLine int
	File     string

	EstabelecimentoCNPJ string
	EstabelecimentoNome string

	Period  time.Time
	Year    int
	Quarter int
	Month   int

	OperationType   int
	OriginIndicator int
	CreditCode      int
	CreditType      int

	Registro string
	CST      int
	HasCST   bool
	CFOP     int
	HasCFOP  bool
	Nature   string // credit-base nature code, e.g. "01".."18"

	ParticipanteCNPJ string
	ParticipanteCPF  string
	ParticipanteNome string

	NumDoc   int
	ChaveDoc string
	Modelo   string

	NumItem   int
	TipoItem  string
	DescrItem string
	CodNCM    string

	NatOperacao string
	Complementar string
	NomeDaConta  string

	DataEmissao time.Time
	DataEntrada time.Time

	ValorItem   decimal.Decimal
	ValorBC     decimal.Decimal
	AliqPIS     decimal.Decimal
	AliqCOFINS  decimal.Decimal
	ValorPIS    decimal.Decimal
	ValorCOFINS decimal.Decimal
	ValorISS    decimal.Decimal
	ValorBCICMS decimal.Decimal
	AliqICMS    decimal.Decimal
	ValorICMS   decimal.Decimal
}

// CNPJBase returns the first 8 digits of the establishment CNPJ, the
// aggregation key component shared by every table in spec.md §4.7–§4.8.
func (l *Line) CNPJBase() string {
	if len(l.EstabelecimentoCNPJ) < 8 {
		return l.EstabelecimentoCNPJ
	}
	return l.EstabelecimentoCNPJ[:8]
}

// QuarterOf returns the 1-based calendar quarter for month (1..12).
func QuarterOf(month int) int {
	return (month-1)/3 + 1
}
