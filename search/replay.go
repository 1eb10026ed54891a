package search

import (
	"fmt"

	"github.com/ccalmels/volcano/mask"
)

// Replay simulates a concrete opening order minute by minute and returns the
// Outcome it produces, with Order set to a copy of order.
//
// Each valve must be useful, not yet open, reachable, and its travel plus
// opening must end strictly before the budget runs out, the same rule
// Explore branches on. Every outcome Explore returns with WithOrder replays
// to the same Mask and Flow.
//
// Complexity: O(budget + len(order)).
func (p *Planner) Replay(start, budget int, order []int) (Outcome, error) {
	if start < 0 || start >= p.net.Len() {
		return Outcome{}, fmt.Errorf("search: start %d of %d: %w", start, p.net.Len(), ErrStartOutOfRange)
	}
	if budget < 0 {
		return Outcome{}, fmt.Errorf("search: budget %d: %w", budget, ErrNegativeBudget)
	}

	var (
		opened  mask.Mask
		current = start
		elapsed int
		rate    int
		flow    int
	)

	// tick advances the clock one minute, releasing the current rate.
	tick := func() {
		flow += rate
		elapsed++
	}

	for step, v := range order {
		i, ok := p.Position(v)
		if !ok {
			return Outcome{}, fmt.Errorf("search: step %d valve %q: %w", step, p.net.Name(v), ErrNotUseful)
		}
		if opened.Has(i) {
			return Outcome{}, fmt.Errorf("search: step %d valve %q: %w", step, p.net.Name(v), ErrAlreadyOpen)
		}
		cost := p.cost[current*len(p.useful)+i]
		if cost == unreachable {
			return Outcome{}, fmt.Errorf("search: step %d valve %q: %w", step, p.net.Name(v), ErrUnreachable)
		}
		if cost >= budget-elapsed {
			return Outcome{}, fmt.Errorf("search: step %d valve %q at minute %d: %w",
				step, p.net.Name(v), elapsed, ErrBudgetExceeded)
		}

		// Walk the tunnels, then spend one minute turning the wheel.
		for m := 0; m < cost; m++ {
			tick()
		}
		opened = opened.With(i)
		rate += p.rates[i]
		current = v
	}

	for elapsed < budget {
		tick()
	}

	return Outcome{Mask: opened, Flow: flow, Order: append([]int(nil), order...)}, nil
}
