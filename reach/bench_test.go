package reach_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/refnet/core"
	"github.com/katalvlaran/refnet/reach"
)

// BenchmarkFrom_Chain measures a single reach traversal over a deep chain.
func BenchmarkFrom_Chain(b *testing.B) {
	const N = 10000
	n := core.New()
	for i := 0; i < N; i++ {
		_ = n.AddReferral(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}

	b.ReportAllocs()
	b.SetBytes(int64(N))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = reach.From(n, "v0")
	}
}

// BenchmarkTopReferrers_Tree measures the full ranking over a branching tree
// (one BFS per user plus the sort).
func BenchmarkTopReferrers_Tree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 users
	nodeCount := (1 << depth) - 1

	n := core.New()
	for i := 1; i <= (nodeCount-1)/2; i++ {
		p := fmt.Sprintf("%d", i)
		_ = n.AddReferral(p, fmt.Sprintf("%d", 2*i))
		_ = n.AddReferral(p, fmt.Sprintf("%d", 2*i+1))
	}

	b.ReportAllocs()
	b.SetBytes(int64(nodeCount))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = reach.TopReferrers(n, 10)
	}
}
