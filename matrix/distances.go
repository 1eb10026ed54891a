// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Distances is the dense all-pairs table of tunnel counts between valves.
//   - Row-major flat storage, read-only once returned by FloydWarshall.
//
// Contract:
//   - Unreachable pairs hold a dedicated marker, never a large finite value,
//     so a legitimate distance can never be mistaken for "no path".

package matrix

import (
	"fmt"
	"strings"
)

// Unreachable is the stored marker for pairs with no connecting path.
// It is negative so it can never collide with a real distance.
const Unreachable = -1

// Distances is an n×n row-major table of shortest tunnel counts.
type Distances struct {
	n    int   // order of the matrix
	data []int // flat backing storage, length == n*n
}

// newDistances allocates an n×n table with every off-diagonal pair unreachable
// and a zero diagonal.
// Complexity: O(n²).
func newDistances(n int) *Distances {
	d := &Distances{n: n, data: make([]int, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				d.data[i*n+j] = Unreachable
			}
		}
	}

	return d
}

// Len returns the matrix order (number of valves).
func (d *Distances) Len() int {
	if d == nil {
		return 0
	}

	return d.n
}

// At returns the distance from i to j and whether j is reachable from i.
// Out-of-range indices report (0, false).
// Complexity: O(1).
func (d *Distances) At(i, j int) (int, bool) {
	if d == nil || i < 0 || j < 0 || i >= d.n || j >= d.n {
		return 0, false
	}
	v := d.data[i*d.n+j]
	if v == Unreachable {
		return 0, false
	}

	return v, true
}

// Distance is the checked variant of At.
// It returns ErrNilDistances, ErrOutOfRange or ErrUnreachable.
func (d *Distances) Distance(i, j int) (int, error) {
	if d == nil {
		return 0, matrixErrorf("Distance", ErrNilDistances)
	}
	if i < 0 || j < 0 || i >= d.n || j >= d.n {
		return 0, fmt.Errorf("Distance(%d,%d): %w", i, j, ErrOutOfRange)
	}
	v := d.data[i*d.n+j]
	if v == Unreachable {
		return 0, fmt.Errorf("Distance(%d,%d): %w", i, j, ErrUnreachable)
	}

	return v, nil
}

// Equal reports whether d and o hold bit-identical tables.
func (d *Distances) Equal(o *Distances) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.n != o.n {
		return false
	}
	for k := range d.data {
		if d.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// Symmetric reports whether At(i,j) == At(j,i) for every pair.
// Upper triangle only, O(n²).
func (d *Distances) Symmetric() bool {
	if d == nil {
		return true
	}
	for i := 0; i < d.n; i++ {
		for j := i + 1; j < d.n; j++ {
			if d.data[i*d.n+j] != d.data[j*d.n+i] {
				return false
			}
		}
	}

	return true
}

// Sub extracts the table restricted to idx, in idx order.
// Used to print the useful-valve submatrix.
func (d *Distances) Sub(idx []int) (*Distances, error) {
	if d == nil {
		return nil, matrixErrorf("Sub", ErrNilDistances)
	}
	for _, i := range idx {
		if i < 0 || i >= d.n {
			return nil, fmt.Errorf("Sub: index %d: %w", i, ErrOutOfRange)
		}
	}
	m := len(idx)
	s := &Distances{n: m, data: make([]int, m*m)}
	for a, i := range idx {
		for b, j := range idx {
			s.data[a*m+b] = d.data[i*d.n+j]
		}
	}

	return s, nil
}

// String renders the table row by row; unreachable cells print as "-".
func (d *Distances) String() string {
	if d == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < d.n; i++ {
		for j := 0; j < d.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if v := d.data[i*d.n+j]; v == Unreachable {
				sb.WriteString("-")
			} else {
				fmt.Fprintf(&sb, "%d", v)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
