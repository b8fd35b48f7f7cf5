package efd

import (
	"time"

	"github.com/efdtools/efd-pis-cofins/aggregate"
	"github.com/efdtools/efd-pis-cofins/fiscal"
)

// FileSummary mirrors the teacher's data.RunSummary: one row per file
// processed, handed back alongside the aggregated tables so a caller can
// report per-file timing and volume without re-deriving it from Lines.
type FileSummary struct {
	File      string
	StartTime time.Time
	EndTime   time.Time
	NumLines  int
	Err       error
}

// Result is everything Run hands to the writer collaborator (spec.md §6):
// the three tables plus the non-fatal message buffer and per-file summaries.
type Result struct {
	Lines []*fiscal.Line

	CST     map[aggregate.CSTKey]aggregate.CSTValue
	Credit  []aggregate.Row
	Revenue map[aggregate.PeriodKey]aggregate.RevenueValue

	Messages []string
	Files    []FileSummary
}
