// Package efd is the top-level orchestrator: it wires package parser,
// accumulate, fiscal and aggregate into the single entry point a CLI or
// test harness calls (spec.md §2 "data flow", §6 "external interfaces").
// Nothing in this package performs its own tokenizing, field coercion or
// aggregation math — it only sequences calls into the packages that do.
package efd

import (
	"github.com/efdtools/efd-pis-cofins/parser"
)

// Options carries everything the CLI collaborator hands the core
// (spec.md §6): a list of files, the three filter toggles, and a progress
// channel. OutputDir is carried for the caller's writer; Run does not read
// it, does not copy it into Result, and never opens a file there itself.
type Options struct {
	Files []string

	ExcludeOutbound         bool
	ExcludeCST49FromRevenue bool
	RestrictToCreditBearing bool

	OutputDir string

	// Progress receives per-file byte-offset updates; may be nil.
	Progress chan<- parser.Progress
}
