package optimize

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ccalmels/volcano/search"
)

// cancelCheckEvery bounds how many outer rows run between context checks.
const cancelCheckEvery = 256

// candidate is a scan-local best pair, by index.
type candidate struct {
	i, j int
	flow int
	ok   bool
}

// better reports whether c beats o: higher flow first, then lower (i, j).
// This ordering makes the parallel reduction return what the sequential
// scan would.
func (c candidate) better(o candidate) bool {
	switch {
	case !o.ok:
		return c.ok
	case !c.ok:
		return false
	case c.flow != o.flow:
		return c.flow > o.flow
	case c.i != o.i:
		return c.i < o.i
	default:
		return c.j < o.j
	}
}

// BestPair finds two outcomes with disjoint masks maximizing the sum of
// their flows.
//
// Implementation:
//   - Stage 1: Compute the best single flow; no outcome can exceed it.
//   - Stage 2: For each i, skip the row when Flow[i] + best cannot beat the
//     current pair.
//   - Stage 3: Scan j ≥ i, accepting disjoint masks with a strictly larger sum.
//     j == i only ever matches an empty mask, which models two idle agents.
//
// With WithWorkers(n), rows are dealt round-robin to n goroutines that each
// keep a local best; the results are reduced by (flow desc, i asc, j asc),
// so the returned Pair does not depend on the worker count.
//
// Errors:
//   - ErrNoOutcomes if outcomes is empty.
//   - ErrNoDisjointPair if nothing matches (an upstream invariant violation).
//   - ctx.Err() if the context is canceled.
//
// Complexity: O(N²) worst case, N = len(outcomes).
func BestPair(outcomes []search.Outcome, opts ...Option) (Pair, error) {
	if len(outcomes) == 0 {
		return Pair{}, ErrNoOutcomes
	}

	popts := DefaultOptions()
	for _, fn := range opts {
		fn(&popts)
	}

	single, _ := Best(outcomes)
	bound := single.Flow

	var (
		best candidate
		err  error
	)
	if popts.Workers < 2 {
		best, err = scanRows(popts, outcomes, bound, 0, 1)
	} else {
		best, err = scanParallel(popts, outcomes, bound)
	}
	if err != nil {
		return Pair{}, err
	}
	if !best.ok {
		return Pair{}, fmt.Errorf("optimize: %d outcomes: %w", len(outcomes), ErrNoDisjointPair)
	}

	return Pair{
		First:       outcomes[best.i],
		Second:      outcomes[best.j],
		FirstIndex:  best.i,
		SecondIndex: best.j,
		Flow:        best.flow,
	}, nil
}

// scanParallel splits rows across Options.Workers goroutines and reduces
// their local bests.
func scanParallel(opts Options, outcomes []search.Outcome, bound int) (candidate, error) {
	workers := opts.Workers
	if workers > len(outcomes) {
		workers = len(outcomes)
	}

	local := make([]candidate, workers)
	g, ctx := errgroup.WithContext(opts.Ctx)
	wopts := opts
	wopts.Ctx = ctx
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			c, err := scanRows(wopts, outcomes, bound, w, workers)
			if err != nil {
				return err
			}
			local[w] = c

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return candidate{}, err
	}

	var best candidate
	for _, c := range local {
		if c.better(best) {
			best = c
		}
	}

	return best, nil
}

// scanRows scans rows first, first+stride, first+2·stride, … and returns the
// best disjoint pair found. Rows are visited in ascending order and only a
// strictly larger sum replaces the current best, so the first maximal
// (i, j) wins.
func scanRows(opts Options, outcomes []search.Outcome, bound, first, stride int) (candidate, error) {
	var (
		best  candidate
		fi    int
		total int
		rows  int
	)
	for i := first; i < len(outcomes); i += stride {
		if rows%cancelCheckEvery == 0 {
			select {
			case <-opts.Ctx.Done():
				return candidate{}, opts.Ctx.Err()
			default:
			}
		}
		rows++

		fi = outcomes[i].Flow
		if best.ok && fi+bound <= best.flow {
			continue
		}
		mi := outcomes[i].Mask
		for j := i; j < len(outcomes); j++ {
			total = fi + outcomes[j].Flow
			if best.ok && total <= best.flow {
				continue
			}
			if !mi.Disjoint(outcomes[j].Mask) {
				continue
			}
			best = candidate{i: i, j: j, flow: total, ok: true}
		}
	}

	return best, nil
}
