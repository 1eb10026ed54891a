// Package mask implements the opened-set bit mask shared by the search
// engine and the optimizers.
//
// Bit i of a Mask stands for the i-th entry of the useful-valve list, not
// for the raw valve index. A Mask is a plain uint64, so membership, insertion
// and disjointness are all single instructions.
package mask

import (
	"errors"
	"fmt"
	"math/bits"
)

// Width is the number of positions a Mask can hold.
const Width = 64

// ErrTooWide is returned when more positions are requested than a Mask can
// address. It is a configuration error: callers must reject the input
// before any search starts instead of letting bits wrap.
var ErrTooWide = errors.New("mask: too many positions for mask width")

// Mask is a fixed-width set of useful-valve positions.
type Mask uint64

// Check returns ErrTooWide when n positions do not fit in a Mask.
func Check(n int) error {
	if n > Width {
		return fmt.Errorf("%d positions, width %d: %w", n, Width, ErrTooWide)
	}

	return nil
}

// Has reports whether position i is set.
func (m Mask) Has(i int) bool { return m&(1<<uint(i)) != 0 }

// With returns m with position i set.
func (m Mask) With(i int) Mask { return m | 1<<uint(i) }

// Disjoint reports whether m and o share no position.
func (m Mask) Disjoint(o Mask) bool { return m&o == 0 }

// Len returns the number of set positions.
func (m Mask) Len() int { return bits.OnesCount64(uint64(m)) }

// Positions returns the set positions in ascending order.
func (m Mask) Positions() []int {
	out := make([]int, 0, m.Len())
	for v := uint64(m); v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros64(v))
	}

	return out
}

// Format renders the lowest n bits of m in binary, position 0 last.
func (m Mask) Format(n int) string {
	if n <= 0 {
		return ""
	}
	if n > Width {
		n = Width
	}

	return fmt.Sprintf("%0*b", n, uint64(m)&(^uint64(0)>>uint(Width-n)))
}
