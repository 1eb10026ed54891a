// File: network.go
// Role: Network construction and read-only queries.
//
// Determinism:
//   - Valve indices follow input order.
//   - Neighbors(i) and Useful() are ascending.
//
// Concurrency:
//   - No mutation after NewNetwork returns; all methods are safe for
//     concurrent use.
package core

import (
	"fmt"
	"sort"
)

// NewNetwork validates valves and builds an immutable Network.
//
// Implementation:
//   - Stage 1: Register names, rejecting empty or duplicate ones and negative rates.
//   - Stage 2: Resolve every tunnel name to an index (ErrUnknownValve otherwise).
//   - Stage 3: Mirror tunnels when WithSymmetricTunnels is set; sort and de-duplicate.
//   - Stage 4: Collect the useful set (Rate > 0).
//
// The input slice is copied; later changes by the caller are not observed.
//
// Complexity:
//   - Time O(V + E log E), Space O(V + E).
func NewNetwork(valves []Valve, opts ...NetworkOption) (*Network, error) {
	n := &Network{
		valves: make([]Valve, len(valves)),
		index:  make(map[string]int, len(valves)),
	}
	for _, opt := range opts {
		opt(n)
	}

	// Stage 1: names and rates.
	for i, v := range valves {
		if v.Name == "" {
			return nil, fmt.Errorf("valve #%d: %w", i, ErrEmptyValveName)
		}
		if v.Rate < 0 {
			return nil, fmt.Errorf("valve %q rate %d: %w", v.Name, v.Rate, ErrNegativeRate)
		}
		if _, dup := n.index[v.Name]; dup {
			return nil, fmt.Errorf("valve %q: %w", v.Name, ErrDuplicateValve)
		}
		n.index[v.Name] = i
		n.valves[i] = Valve{
			Name:    v.Name,
			Rate:    v.Rate,
			Tunnels: append([]string(nil), v.Tunnels...),
		}
	}

	// Stage 2: resolve tunnels.
	sets := make([]map[int]struct{}, len(valves))
	for i := range sets {
		sets[i] = make(map[int]struct{}, len(valves[i].Tunnels))
	}
	for i, v := range n.valves {
		for _, to := range v.Tunnels {
			j, ok := n.index[to]
			if !ok {
				return nil, fmt.Errorf("valve %q tunnel to %q: %w", v.Name, to, ErrUnknownValve)
			}
			sets[i][j] = struct{}{}
			// Stage 3: mirror on request.
			if n.symmetric {
				sets[j][i] = struct{}{}
			}
		}
	}

	n.neighbors = make([][]int, len(valves))
	for i, set := range sets {
		nbs := make([]int, 0, len(set))
		for j := range set {
			nbs = append(nbs, j)
		}
		sort.Ints(nbs)
		n.neighbors[i] = nbs
	}

	// Stage 4: useful set, purely rate-based.
	for i, v := range n.valves {
		if v.Rate > 0 {
			n.useful = append(n.useful, i)
		}
	}

	return n, nil
}

// Len returns the number of valves.
func (n *Network) Len() int { return len(n.valves) }

// Symmetric reports whether tunnels were mirrored at construction.
func (n *Network) Symmetric() bool { return n.symmetric }

// Valve returns a copy of the valve at index i.
func (n *Network) Valve(i int) (Valve, error) {
	if i < 0 || i >= len(n.valves) {
		return Valve{}, fmt.Errorf("index %d: %w", i, ErrValveNotFound)
	}
	v := n.valves[i]
	v.Tunnels = append([]string(nil), v.Tunnels...)

	return v, nil
}

// Index returns the stable index of the valve named name.
func (n *Network) Index(name string) (int, error) {
	i, ok := n.index[name]
	if !ok {
		return -1, fmt.Errorf("%q: %w", name, ErrValveNotFound)
	}

	return i, nil
}

// Name returns the name of valve i, or "" when i is out of range.
func (n *Network) Name(i int) string {
	if i < 0 || i >= len(n.valves) {
		return ""
	}

	return n.valves[i].Name
}

// Rate returns the flow rate of valve i, or 0 when i is out of range.
func (n *Network) Rate(i int) int {
	if i < 0 || i >= len(n.valves) {
		return 0
	}

	return n.valves[i].Rate
}

// Neighbors returns the ascending neighbor indices of valve i.
// The returned slice is a copy.
func (n *Network) Neighbors(i int) ([]int, error) {
	if i < 0 || i >= len(n.valves) {
		return nil, fmt.Errorf("index %d: %w", i, ErrValveNotFound)
	}

	return append([]int(nil), n.neighbors[i]...), nil
}

// Useful returns the ascending indices of valves with a positive rate.
// The start valve is not special-cased. The returned slice is a copy.
func (n *Network) Useful() []int {
	return append([]int(nil), n.useful...)
}

// EachTunnel calls fn for every resolved tunnel from→to in index order.
// Iteration stops at the first error, which is returned unchanged.
func (n *Network) EachTunnel(fn func(from, to int) error) error {
	for from, nbs := range n.neighbors {
		for _, to := range nbs {
			if err := fn(from, to); err != nil {
				return err
			}
		}
	}

	return nil
}
