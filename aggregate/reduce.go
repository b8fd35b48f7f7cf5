package aggregate

import (
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"github.com/efdtools/efd-pis-cofins/fiscal"
)

// LargeModeThreshold is the line count at or above which reduction switches
// from a single sequential fold to the parallel fold-reduce of spec.md
// §5: "the final aggregation runs in two modes, chosen by input size".
const LargeModeThreshold = 50_000

// Add is the commutative, associative combinator a reduction is built
// from — either Value.Add or RevenueValue.AddRevenue, supplied by the
// caller so this file stays generic over both reductions.
type Add[V any] func(a, b V) V

// KeyFunc extracts the grouping key for one line, reporting false to
// drop the line from this reduction (e.g. an outbound CST being folded
// into the credit reduction).
type KeyFunc[K comparable] func(l *fiscal.Line) (K, bool)

// ValueFunc computes the per-line contribution once its key is known.
type ValueFunc[K comparable, V any] func(l *fiscal.Line, key K) V

// Reduce folds lines into a map[K]V, choosing sequential or parallel
// fold-reduce by input size. The reduction is associative and
// commutative by construction (spec.md's invariant that "keys with
// equal field content collapse regardless of file order"), so either
// strategy yields byte-identical results.
func Reduce[K comparable, V any](lines []*fiscal.Line, keyFn KeyFunc[K], valFn ValueFunc[K, V], add Add[V]) map[K]V {
	if len(lines) < LargeModeThreshold {
		return foldSequential(lines, keyFn, valFn, add)
	}
	return foldParallel(lines, keyFn, valFn, add)
}

func foldSequential[K comparable, V any](lines []*fiscal.Line, keyFn KeyFunc[K], valFn ValueFunc[K, V], add Add[V]) map[K]V {
	out := make(map[K]V, len(lines)/4+1)
	for _, l := range lines {
		k, ok := keyFn(l)
		if !ok {
			continue
		}
		v := valFn(l, k)
		if existing, found := out[k]; found {
			out[k] = add(existing, v)
		} else {
			out[k] = v
		}
	}
	return out
}

// foldParallel splits lines across a work-stealing pool, has each worker
// fold its own chunk into a local map stored in its own slot, then, once
// every worker has finished, merges the local maps one after another with
// add. No lock is taken: workers share no map, and the merge runs on the
// calling goroutine after the pool has drained.
func foldParallel[K comparable, V any](lines []*fiscal.Line, keyFn KeyFunc[K], valFn ValueFunc[K, V], add Add[V]) map[K]V {
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	chunkSize := (len(lines) + workers - 1) / workers

	locals := make([]map[K]V, (len(lines)+chunkSize-1)/chunkSize)

	p := pool.New().WithMaxGoroutines(workers)
	for start := 0; start < len(lines); start += chunkSize {
		end := start + chunkSize
		if end > len(lines) {
			end = len(lines)
		}
		chunk, slot := lines[start:end], start/chunkSize
		p.Go(func() {
			locals[slot] = foldSequential(chunk, keyFn, valFn, add)
		})
	}
	p.Wait()

	out := make(map[K]V, len(lines)/4+1)
	for _, local := range locals {
		for k, v := range local {
			if existing, ok := out[k]; ok {
				out[k] = add(existing, v)
			} else {
				out[k] = v
			}
		}
	}
	return out
}
