package search_test

import "testing"

// BenchmarkExplore_Sample30 measures the full 30-minute search on the
// canonical ten-valve network. The planner is built once outside the loop.
func BenchmarkExplore_Sample30(b *testing.B) {
	p, start := samplePlanner(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Explore(start, 30)
	}
}
