package search

import (
	"fmt"

	"github.com/ccalmels/volcano/core"
	"github.com/ccalmels/volcano/mask"
	"github.com/ccalmels/volcano/matrix"
)

// unreachable marks a (valve, position) pair with no path in the cost table.
const unreachable = -1

// Planner holds everything Explore needs that does not depend on the start
// valve or the budget. It is immutable and safe for concurrent use.
type Planner struct {
	net    *core.Network
	useful []int       // position → valve index
	rates  []int       // position → flow rate
	pos    map[int]int // valve index → position
	cost   []int       // cost[v*len(useful)+p] = travel + 1 minute to open, or unreachable
}

// NewPlanner extracts the useful-valve set and precomputes the cost of
// reaching and opening each useful valve from every valve.
//
// It fails with mask.ErrTooWide when the useful set cannot fit in a Mask;
// this check happens before any search runs.
//
// Complexity: O(V·U) time and memory, U = number of useful valves.
func NewPlanner(net *core.Network, dist *matrix.Distances) (*Planner, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if dist == nil {
		return nil, ErrNilDistances
	}
	if dist.Len() != net.Len() {
		return nil, fmt.Errorf("search: %d valves, %dx%d distances: %w",
			net.Len(), dist.Len(), dist.Len(), ErrDimensionMismatch)
	}

	useful := net.Useful()
	if err := mask.Check(len(useful)); err != nil {
		return nil, fmt.Errorf("search: %d useful valves: %w", len(useful), err)
	}

	p := &Planner{
		net:    net,
		useful: useful,
		rates:  make([]int, len(useful)),
		pos:    make(map[int]int, len(useful)),
		cost:   make([]int, net.Len()*len(useful)),
	}
	for i, v := range useful {
		p.rates[i] = net.Rate(v)
		p.pos[v] = i
	}

	u := len(useful)
	for v := 0; v < net.Len(); v++ {
		for i, to := range useful {
			d, ok := dist.At(v, to)
			if !ok {
				p.cost[v*u+i] = unreachable
				continue
			}
			p.cost[v*u+i] = d + 1
		}
	}

	return p, nil
}

// Network returns the network the planner was built from.
func (p *Planner) Network() *core.Network { return p.net }

// Useful returns the valve index of every mask position, in position order.
func (p *Planner) Useful() []int { return append([]int(nil), p.useful...) }

// Position returns the mask position of valve v, if v is useful.
func (p *Planner) Position(v int) (int, bool) {
	i, ok := p.pos[v]
	return i, ok
}

// Names returns the names of the valves set in m, in position order.
func (p *Planner) Names(m mask.Mask) []string {
	out := make([]string, 0, m.Len())
	for _, i := range m.Positions() {
		if i < len(p.useful) {
			out = append(out, p.net.Name(p.useful[i]))
		}
	}

	return out
}
