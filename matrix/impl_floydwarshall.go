// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) over a valve network with deterministic loop order.
//   - Every tunnel costs 1; O(n³) time, O(n²) space for the returned table.
//
// Contract:
//   - Unreachable pairs keep the Unreachable marker; the diagonal is 0.

package matrix

import "github.com/ccalmels/volcano/core"

// Operation name constants for unified error wrapping and reducing magic strings.
const opFloydWarshall = "FloydWarshall"

// floydWarshallInPlace runs APSP closure on d in-place.
//
// Policy (assumed by callers):
//   - Unreachable denotes "no path" off-diagonal.
//   - The diagonal MUST be 0 before calling.
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n^3); Extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(d *Distances) {
	n := d.n

	var (
		k, i, j      int // loop indices
		baseK, baseI int // row base offsets for K and I in the flat buffer
		ik, ij, kj   int // distances d[i,k], d[i,j], d[k,j]
		cand         int // candidate path length via k
	)

	data := d.data

	for k = 0; k < n; k++ {
		baseK = k * n

		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Unreachable { // no path i→k, nothing to gain via k
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Unreachable {
					continue
				}
				ij = data[baseI+j]
				cand = ik + kj
				if ij == Unreachable || cand < ij { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes shortest tunnel counts between every pair of valves.
//
// Contract:
//   - Each declared tunnel from→to sets distance 1; the diagonal is 0.
//   - Tunnels are used exactly as the Network resolved them; no symmetry is assumed.
//
// Determinism:
//   - Loop order is fixed (k → i → j); rebuilding from the same Network
//     yields an identical table (see Distances.Equal).
//
// Complexity: Time O(V³ + E), Space O(V²).
func FloydWarshall(net *core.Network) (*Distances, error) {
	if net == nil {
		return nil, matrixErrorf(opFloydWarshall, ErrNilNetwork)
	}

	d := newDistances(net.Len())
	_ = net.EachTunnel(func(from, to int) error {
		if from != to {
			d.data[from*d.n+to] = 1
		}

		return nil
	})

	floydWarshallInPlace(d)

	return d, nil
}
