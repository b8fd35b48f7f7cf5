package efd

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"github.com/efdtools/efd-pis-cofins/accumulate"
	"github.com/efdtools/efd-pis-cofins/aggregate"
	"github.com/efdtools/efd-pis-cofins/fiscal"
	"github.com/efdtools/efd-pis-cofins/parser"
)

// Run implements spec.md §2's data flow end to end: every file is parsed
// and accumulated independently and in parallel (spec.md §5 "across
// files, parsing is embarrassingly parallel"); the resulting enriched
// lines from all files are then pooled and handed to the two aggregators.
// A fatal tokenizer/reader/coercion error (spec.md §4.9) aborts only the
// file it occurred in — Run keeps processing the rest and returns every
// file's error joined together.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := zerolog.Ctx(ctx)

	summaries := make([]FileSummary, len(opts.Files))
	perFile := make([][]*fiscal.Line, len(opts.Files))
	perFileMessages := make([][]string, len(opts.Files))

	p := pool.New().WithMaxGoroutines(fileWorkerCount())
	for i, path := range opts.Files {
		i, path := i, path
		p.Go(func() {
			start := time.Now()
			lines, msgs, err := runFile(ctx, path, opts.Progress)
			summaries[i] = FileSummary{File: path, StartTime: start, EndTime: time.Now(), NumLines: len(lines), Err: err}
			if err != nil {
				log.Error().Err(err).Str("file", path).Msg("aborting file")
				return
			}
			perFile[i] = lines
			perFileMessages[i] = msgs
		})
	}
	p.Wait()

	var errs error
	var lines []*fiscal.Line
	var allMessages []string
	for i, s := range summaries {
		if s.Err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", s.File, s.Err))
			continue
		}
		lines = append(lines, perFile[i]...)
		allMessages = append(allMessages, perFileMessages[i]...)
	}

	// The two aggregators always consume the complete enriched-line set —
	// each already filters internally to the CST range it cares about
	// (spec.md §4.7, §4.8) — so the "exclude outbound"/"restrict to
	// credit-bearing" toggles only shape the enriched-line table itself,
	// never starve the revenue or credit reductions of their inputs.
	revenue := aggregate.SegregateRevenue(revenueInput(lines, opts))
	result := &Result{
		CST:      aggregate.ConsolidateCST(lines),
		Credit:   aggregate.CreditReduction(lines, revenue),
		Revenue:  revenue,
		Messages: allMessages,
		Files:    summaries,
	}
	aggregate.SortRows(result.Credit)

	if opts.RestrictToCreditBearing {
		lines = filterCreditBearing(lines)
	}
	if opts.ExcludeOutbound {
		lines = filterExcludeOutbound(lines)
	}
	result.Lines = lines

	return result, errs
}

func fileWorkerCount() int {
	if n := runtime.NumCPU(); n > 1 {
		return n
	}
	return 1
}

// runFile sequentially drives one file's parser → accumulator → emitter
// chain (spec.md §4.5 "the context accumulator is a serial state
// machine"); it is the unit of cross-file parallelism in Run.
func runFile(ctx context.Context, path string, progress chan<- parser.Progress) ([]*fiscal.Line, []string, error) {
	records := make(chan *parser.Record, 256)
	errCh := make(chan error, 1)

	go func() {
		errCh <- parser.ReadFile(ctx, path, records, progress)
		close(records)
	}()

	run := &fileRun{state: accumulate.NewState(path)}
	for rec := range records {
		run.dispatch(rec)
	}

	if err := <-errCh; err != nil {
		return nil, nil, err
	}
	return run.lines, run.state.Messages, nil
}

func filterCreditBearing(lines []*fiscal.Line) []*fiscal.Line {
	out := lines[:0:0]
	for _, l := range lines {
		if aggregate.EntersCreditReduction(l) {
			out = append(out, l)
		}
	}
	return out
}

func filterExcludeOutbound(lines []*fiscal.Line) []*fiscal.Line {
	out := lines[:0:0]
	for _, l := range lines {
		if l.HasCST && aggregate.IsOutboundCST(l.CST) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// revenueInput applies the CST-49 exclusion toggle (spec.md §9 Open
// Question 1) ahead of SegregateRevenue, which otherwise treats CST 49 as
// any other non-tributed outbound CST.
func revenueInput(lines []*fiscal.Line, opts Options) []*fiscal.Line {
	if !opts.ExcludeCST49FromRevenue {
		return lines
	}
	out := lines[:0:0]
	for _, l := range lines {
		if l.HasCST && l.CST == 49 {
			continue
		}
		out = append(out, l)
	}
	return out
}
