package search_test

import (
	"fmt"

	"github.com/ccalmels/volcano/core"
	"github.com/ccalmels/volcano/matrix"
	"github.com/ccalmels/volcano/search"
)

// ExamplePlanner_Explore lists every outcome of a five-minute search on a
// two-valve corridor:
//
//	AA ── BB ── CC
//	0     10    1
//
// Opening BB takes 2 minutes and CC one more hop plus a minute.
func ExamplePlanner_Explore() {
	net, _ := core.NewNetwork([]core.Valve{
		{Name: "AA", Tunnels: []string{"BB"}},
		{Name: "BB", Rate: 10, Tunnels: []string{"CC"}},
		{Name: "CC", Rate: 1},
	}, core.WithSymmetricTunnels())
	dist, _ := matrix.FloydWarshall(net)

	p, err := search.NewPlanner(net, dist)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := p.Explore(0, 5, search.WithOrder())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, o := range res.Outcomes {
		fmt.Printf("opened=%v flow=%d\n", p.Names(o.Mask), o.Flow)
	}

	// Output:
	// opened=[] flow=0
	// opened=[BB] flow=30
	// opened=[BB CC] flow=31
	// opened=[CC] flow=2
}
