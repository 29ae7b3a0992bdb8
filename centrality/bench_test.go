package centrality_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/refnet/centrality"
	"github.com/katalvlaran/refnet/core"
)

// benchChain builds v000 → v001 → … of the given size.
func benchChain(b *testing.B, size int) *core.Network {
	b.Helper()
	n := core.New()
	for i := 0; i+1 < size; i++ {
		referrer := fmt.Sprintf("v%03d", i)
		candidate := fmt.Sprintf("v%03d", i+1)
		if err := n.AddReferral(referrer, candidate); err != nil {
			b.Fatalf("AddReferral(%s, %s) returned %v", referrer, candidate, err)
		}
	}
	return n
}

// BenchmarkFlow_ChainSequential measures all-pairs flow centrality on a
// 200-user chain with a single BFS worker.
func BenchmarkFlow_ChainSequential(b *testing.B) {
	n := benchChain(b, 200)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := centrality.Flow(n); err != nil {
			b.Fatalf("Flow returned error: %v", err)
		}
	}
}

// BenchmarkFlow_ChainWorkers measures the same computation with the BFS
// passes fanned out over eight workers.
func BenchmarkFlow_ChainWorkers(b *testing.B) {
	n := benchChain(b, 200)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := centrality.Flow(n, centrality.WithWorkers(8)); err != nil {
			b.Fatalf("Flow returned error: %v", err)
		}
	}
}

// BenchmarkShortestFrom_Chain measures one single-source pass.
func BenchmarkShortestFrom_Chain(b *testing.B) {
	n := benchChain(b, 200)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if dist := centrality.ShortestFrom(n, "v000"); len(dist) == 0 {
			b.Fatal("ShortestFrom returned empty distances")
		}
	}
}
