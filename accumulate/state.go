// Package accumulate implements the per-file context accumulator of
// spec.md §4.5: a state machine, driven by record code, that threads
// parent-header context and cross-reference directories through one
// file's record stream so the line emitter (package fiscal) can resolve
// them at each leaf.
package accumulate

import (
	"time"

	"github.com/efdtools/efd-pis-cofins/parser"
)

// Participant is one row of the 0150 directory.
type Participant struct {
	Name string
	CNPJ string
	CPF  string
}

// Product is one row of the 0200 directory.
type Product struct {
	Description string
	Type        string
	NCM         string
}

// Account is one row of the 0500 chart-of-accounts directory.
type Account struct {
	NatureGroup string
	Name        string
}

// Correlated is the (PIS rate, PIS value) pair the PIS<->COFINS
// correlation map resolves to (spec.md §3, §4.5).
type Correlated struct {
	AliqPIS  string
	ValorPIS string
}

// State is one file's scratchpad: it lives for the duration of one file's
// parse and is discarded at EOF (spec.md §3, AccumulatorState entity). It
// is not safe for concurrent use — each worker owns one State per file.
type State struct {
	File string

	ReportCNPJ  string // 0000.CNPJ, the fallback establishment
	PeriodStart time.Time
	PeriodEnd   time.Time

	CurrentCNPJ string // most recent block-opener (A010/C010/D010/F010/I010)

	Establishments      map[string]string // COD_EST -> name, from 0140
	EstablishmentByCNPJ map[string]string // CNPJ -> name, from 0140
	Participants   map[string]Participant
	ReverseCNPJ    map[string]string // CNPJ -> name
	ReverseCPF     map[string]string // CPF -> name
	Products       map[string]Product
	Accounts       map[string]Account
	Complementary  map[string]string // COD_INF -> text, from 0450
	Natures        map[string]string // COD_NAT -> text, from 0400

	Correlation map[string]Correlated

	// Headers holds the most recently seen record for each header-family
	// code, replaced in place — the source's notion of "scope" (spec.md
	// §4.5). Keyed by the header's own record code.
	Headers map[string]*parser.Record

	// Deferred tracks, per deferred-parent family (C190, C490, D600),
	// the caller's indices of enriched lines emitted since that family's last
	// header — so a late-arriving C199/C499/D609 can retroactively merge
	// into them (spec.md §4.5 "Deferred joining").
	Deferred map[string][]int

	Messages []string
}

// NewState returns an empty per-file accumulator.
func NewState(file string) *State {
	return &State{
		File:           file,
		Establishments:      map[string]string{},
		EstablishmentByCNPJ: map[string]string{},
		Participants:   map[string]Participant{},
		ReverseCNPJ:    map[string]string{},
		ReverseCPF:     map[string]string{},
		Products:       map[string]Product{},
		Accounts:       map[string]Account{},
		Complementary:  map[string]string{},
		Natures:        map[string]string{},
		Correlation:    map[string]Correlated{},
		Headers:        map[string]*parser.Record{},
		Deferred:       map[string][]int{},
	}
}

// Warnf appends a soft-error message to the accumulator's buffer
// (spec.md §4.9's "missing context" / non-fatal conditions).
func (s *State) Warnf(line int, format string, args ...any) {
	s.Messages = append(s.Messages, sprintfLine(s.File, line, format, args...))
}

// TrackDeferred records that an enriched line at lineNo was emitted while
// family is the relevant open scope, for a later deferred record to find.
func (s *State) TrackDeferred(family string, lineNo int) {
	s.Deferred[family] = append(s.Deferred[family], lineNo)
}

// TakeDeferred returns and clears the tracked line numbers for family.
func (s *State) TakeDeferred(family string) []int {
	lines := s.Deferred[family]
	delete(s.Deferred, family)
	return lines
}
