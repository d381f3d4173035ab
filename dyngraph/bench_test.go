package dyngraph_test

import (
	"testing"

	"github.com/katalvlaran/lvlalgo/dyngraph"
)

const benchVertices = 10_000

// benchGraph builds an undirected ring with chords.
func benchGraph() *dyngraph.DynamicGraph[int] {
	g := dyngraph.New[int]()
	for i := 0; i < benchVertices; i++ {
		g.Add(i, (i+1)%benchVertices)
		g.Add(i, (i*7)%benchVertices)
	}

	return g
}

// BenchmarkAdd measures edge insertion including implicit vertex creation.
func BenchmarkAdd(b *testing.B) {
	g := dyngraph.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Add(i%benchVertices, (i*31)%benchVertices)
	}
}

// BenchmarkAddRemoveEdge measures an insert/delete pair on a populated graph.
func BenchmarkAddRemoveEdge(b *testing.B) {
	g := benchGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, y := i%benchVertices, (i*13)%benchVertices
		g.Add(x, y)
		g.RemoveEdge(x, y)
	}
}

// BenchmarkCountComponents measures the O(V+E) weak component search.
func BenchmarkCountComponents(b *testing.B) {
	g := benchGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.CountComponents()
	}
}
