// Package search implements the exhaustive, time-budgeted depth-first search
// over valve-opening orders.
//
// Key features:
//   - Explore(start, budget, opts...): every (opened set, total flow) outcome
//     reachable within the budget, one per search state.
//   - Closed-form scoring: each state is scored in O(1) as
//     flow + rate·remaining, no minute-by-minute simulation.
//   - Pruning: a valve whose travel + opening time is not strictly below the
//     remaining time is never branched into.
//   - Replay(start, budget, order): minute-by-minute simulation of a concrete
//     opening order, used to audit outcomes.
//   - Cancellation via context.Context, per-outcome hook.
//
// Complexity:
//
//   - Time:   O(number of feasible opening orders · U), U = useful valves.
//   - Memory: O(U) recursion depth plus the outcome list.
//
// Errors:
//
//   - ErrStartOutOfRange   if start is not a valve index.
//   - ErrNegativeBudget    if budget < 0.
//   - context.Canceled     if ctx is done.
//   - any error returned by OnOutcome.
package search

import (
	"fmt"

	"github.com/ccalmels/volcano/mask"
)

// walker carries the per-call state of one Explore run.
type walker struct {
	p     *Planner
	opts  Options
	res   *Result
	order []int // valve indices opened along the current path
}

// Explore enumerates every outcome reachable from start within budget.
// The first outcome is always the self-outcome of the empty opened set.
func (p *Planner) Explore(start, budget int, opts ...Option) (*Result, error) {
	if start < 0 || start >= p.net.Len() {
		return nil, fmt.Errorf("search: start %d of %d: %w", start, p.net.Len(), ErrStartOutOfRange)
	}
	if budget < 0 {
		return nil, fmt.Errorf("search: budget %d: %w", budget, ErrNegativeBudget)
	}

	sopts := DefaultOptions()
	for _, fn := range opts {
		fn(&sopts)
	}

	w := &walker{
		p:    p,
		opts: sopts,
		res:  &Result{Start: start, Budget: budget},
	}
	if sopts.RecordOrder {
		w.order = make([]int, 0, len(p.useful))
	}

	if err := w.explore(start, 0, 0, 0, budget); err != nil {
		return nil, err
	}

	return w.res, nil
}

// explore emits the self-outcome of the current state, then recurses into
// every unopened useful valve that can be reached and opened in time.
func (w *walker) explore(current int, opened mask.Mask, flow, rate, remaining int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// Stop here and let the current rate run out the clock.
	out := Outcome{Mask: opened, Flow: flow + rate*remaining}
	if w.opts.RecordOrder {
		out.Order = append([]int(nil), w.order...)
	}
	w.res.Outcomes = append(w.res.Outcomes, out)
	w.res.Expanded++
	if w.opts.OnOutcome != nil {
		if err := w.opts.OnOutcome(out); err != nil {
			return fmt.Errorf("search: OnOutcome hook: %w", err)
		}
	}

	u := len(w.p.useful)
	base := current * u
	var cost int
	for i := 0; i < u; i++ {
		if opened.Has(i) {
			continue
		}
		cost = w.p.cost[base+i]
		// An opening that ends with no minute left releases nothing.
		if cost == unreachable || cost >= remaining {
			w.res.Pruned++
			continue
		}

		next := w.p.useful[i]
		if w.opts.RecordOrder {
			w.order = append(w.order, next)
		}
		err := w.explore(
			next,
			opened.With(i),
			flow+cost*rate,
			rate+w.p.rates[i],
			remaining-cost,
		)
		if w.opts.RecordOrder {
			w.order = w.order[:len(w.order)-1]
		}
		if err != nil {
			return err
		}
	}

	return nil
}
