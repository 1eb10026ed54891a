package optimize

import "github.com/ccalmels/volcano/search"

// Best returns the outcome with the highest flow, the earliest one on ties.
//
// Complexity: O(N).
func Best(outcomes []search.Outcome) (search.Outcome, error) {
	if len(outcomes) == 0 {
		return search.Outcome{}, ErrNoOutcomes
	}

	best := 0
	for i := 1; i < len(outcomes); i++ {
		if outcomes[i].Flow > outcomes[best].Flow {
			best = i
		}
	}

	return outcomes[best], nil
}
