package matrix_test

import (
	"fmt"

	"github.com/ccalmels/volcano/core"
	"github.com/ccalmels/volcano/matrix"
)

// ExampleFloydWarshall computes travel times on a square of valves:
//
//	AA───BB
//	│     │
//	DD───CC
func ExampleFloydWarshall() {
	net, _ := core.NewNetwork([]core.Valve{
		{Name: "AA", Tunnels: []string{"BB", "DD"}},
		{Name: "BB", Rate: 3, Tunnels: []string{"CC"}},
		{Name: "CC", Rate: 7, Tunnels: []string{"DD"}},
		{Name: "DD", Rate: 1},
	}, core.WithSymmetricTunnels())

	d, err := matrix.FloydWarshall(net)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(d)

	// Output:
	// 0 1 2 1
	// 1 0 1 2
	// 2 1 0 1
	// 1 2 1 0
}
