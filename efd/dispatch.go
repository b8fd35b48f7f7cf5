package efd

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/efdtools/efd-pis-cofins/accumulate"
	"github.com/efdtools/efd-pis-cofins/fiscal"
	"github.com/efdtools/efd-pis-cofins/parser"
)

func decOf(rec *parser.Record, name string) decimal.Decimal {
	v, ok := rec.Get(name)
	if !ok || v.IsNull() {
		return decimal.Zero
	}
	return v.Dec()
}

// directoryCodes are fully handled by State.Feed's bookkeeping (spec.md
// §4.5) and never produce an enriched line on their own.
var directoryCodes = map[string]bool{
	"0000": true, "0140": true, "0150": true, "0200": true,
	"0400": true, "0450": true, "0500": true,
}

// adjustmentFamily is the M100/M500 pair handled by fiscal.EmitAdjustmentLines.
var adjustmentFamily = map[string]bool{"M100": true, "M500": true}

// detailFamily is the M105/M505 pair handled by fiscal.EmitDetailLine.
var detailFamily = map[string]string{"M105": "M100", "M505": "M500"}

// priorPeriodFamily is the 1100/1500 pair handled by fiscal.EmitPriorPeriodDiscount.
var priorPeriodFamily = map[string]bool{"1100": true, "1500": true}

// deferredRecordParent maps a late-arriving deferred record (spec.md §4.5)
// to the header family whose previously emitted lines it retroactively
// annotates.
var deferredRecordParent = map[string]string{
	"C198": "C190", "C199": "C190",
	"C499": "C490",
	"D609": "D600",
}

// fileRun holds the per-file working state shared by the dispatch helpers:
// the accumulator and the slice of lines emitted so far (the indices
// passed to TrackDeferred point into it).
type fileRun struct {
	state *accumulate.State
	lines []*fiscal.Line
}

// dispatch routes one parsed record to the accumulator, the line emitter,
// or the deferred-merge logic, per spec.md §4.5–§4.6. It is the piece the
// comment in fiscal.Emit calls out as living in "the per-file run loop".
func (r *fileRun) dispatch(rec *parser.Record) {
	switch {
	case directoryCodes[rec.Code]:
		r.state.Feed(rec)

	case adjustmentFamily[rec.Code]:
		r.state.Feed(rec) // registers the M100/M500 header too
		period := r.reportPeriod()
		for _, l := range fiscal.EmitAdjustmentLines(r.state, rec, period) {
			r.track(rec.Code, l)
		}

	case detailFamily[rec.Code] != "":
		header, ok := r.state.Headers[detailFamily[rec.Code]]
		if !ok {
			r.state.Warnf(rec.Line, "%s with no open %s header", rec.Code, detailFamily[rec.Code])
			return
		}
		l := fiscal.EmitDetailLine(r.state, header, rec, r.reportPeriod())
		r.track(rec.Code, l)

	case priorPeriodFamily[rec.Code]:
		if l := fiscal.EmitPriorPeriodDiscount(r.state, rec, r.reportPeriod()); l != nil {
			r.track(rec.Code, l)
		}

	case deferredRecordParent[rec.Code] != "":
		r.mergeDeferred(rec, deferredRecordParent[rec.Code])

	default:
		// Everything else threads through the accumulator first (header
		// registers, block openers, correlation sources all update their
		// bookkeeping here with no line emitted on their own account).
		// Of those, only records declaring a CST field are "leaf" in the
		// spec.md §4.6 sense: item of a fiscal document, or an aggregated
		// record standing in without a child — both cases carry their
		// own CST, which is exactly the signal fillCSTAndCFOP and every
		// derived field downstream of it depend on.
		r.state.Feed(rec)
		if _, hasCST := rec.Get("CST"); hasCST {
			l := fiscal.Emit(r.state, rec)
			r.track(rec.Code, l)
		}
	}
}

// track appends l to the run's output and, when its record family is one
// of the deferred-joining parents, records its index for later retroactive
// merges.
func (r *fileRun) track(code string, l *fiscal.Line) {
	idx := len(r.lines)
	r.lines = append(r.lines, l)
	if family, ok := accumulate.ParentOf[code]; ok && accumulate.DeferredFamilies[family] {
		r.state.TrackDeferred(family, idx)
	} else if accumulate.DeferredFamilies[code] {
		r.state.TrackDeferred(code, idx)
	}
}

// mergeDeferred retroactively folds a late C198/C199/C499/D609 record's
// fields into every line emitted since family's last header (spec.md
// §4.5's "deferred joining"). C199 additionally carries a base-of-
// calculation adjustment that is added to each tracked line's ValorBC;
// the others only carry a legal-process reference folded into the
// complementary-info column.
//
// This reads state.Deferred directly rather than State.TakeDeferred: a
// single C190/C490/D600 scope can carry both a C198 and a C199 (or
// several D609s), and each must see the same tracked set, not have it
// consumed by whichever arrives first. The set is still reset for free
// the moment the next header of that family appears, since Feed deletes
// state.Deferred[code] there.
func (r *fileRun) mergeDeferred(rec *parser.Record, family string) {
	indices := r.state.Deferred[family]
	if len(indices) == 0 {
		r.state.Warnf(rec.Line, "%s with no tracked %s lines to merge into", rec.Code, family)
		return
	}

	numProc := rec.Str("NUM_PROC")
	var adjustment bool
	var adjValue = decOf(rec, "VL_AJUSTE")
	if rec.Code == "C199" {
		adjustment = adjValue.IsPositive() || adjValue.IsNegative()
	}

	for _, idx := range indices {
		if idx >= len(r.lines) {
			continue
		}
		l := r.lines[idx]
		if numProc != "" {
			switch {
			case l.Complementar != "":
				l.Complementar += " & " + numProc
			default:
				l.Complementar = numProc
			}
		}
		if adjustment {
			l.ValorBC = l.ValorBC.Add(adjValue)
		}
	}
}

func (r *fileRun) reportPeriod() time.Time {
	if !r.state.PeriodStart.IsZero() {
		return r.state.PeriodStart
	}
	return time.Time{}
}
