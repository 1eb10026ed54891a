package optimize_test

import (
	"fmt"

	"github.com/ccalmels/volcano/optimize"
	"github.com/ccalmels/volcano/search"
)

// ExampleBestPair picks two agents that never open the same valve.
// The two richest outcomes overlap on bit 1, so the answer pairs the
// richest one with the best outcome that avoids it.
func ExampleBestPair() {
	outcomes := []search.Outcome{
		{Mask: 0b000, Flow: 0},
		{Mask: 0b011, Flow: 90},
		{Mask: 0b110, Flow: 80},
		{Mask: 0b100, Flow: 30},
	}

	single, _ := optimize.Best(outcomes)
	pair, err := optimize.BestPair(outcomes, optimize.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("single:", single.Flow)
	fmt.Printf("pair: %d (%03b + %03b)\n", pair.Flow, pair.First.Mask, pair.Second.Mask)

	// Output:
	// single: 90
	// pair: 120 (011 + 100)
}
