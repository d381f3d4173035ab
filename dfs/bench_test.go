package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvlalgo/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a directed chain 0 → 1 → … → 9999.
// The graph is built once; each iteration is O(V + E).
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkTopologicalSort_Chain10000 measures TopologicalSort on the same chain.
func BenchmarkTopologicalSort_Chain10000(b *testing.B) {
	g := buildChain(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort(g)
	}
}
