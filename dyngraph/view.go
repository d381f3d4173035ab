// File: view.go
// Role: read-only queries and adjacency snapshots.
// Determinism:
//   - Every slice returned here is sorted ascending.
//   - Snapshots are deep copies; mutating them does not affect the graph.

package dyngraph

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/constraints"
)

// Size returns the number of vertices, including isolated ones.
// Complexity: O(1).
func (g *DynamicGraph[T]) Size() int { return len(g.forward) }

// Edges returns the number of logical edges. Complexity: O(1).
func (g *DynamicGraph[T]) Edges() int { return g.edges }

// HasVertex reports whether v is a vertex.
func (g *DynamicGraph[T]) HasVertex(v T) bool {
	_, ok := g.forward[v]
	return ok
}

// HasEdge reports whether at least one arc x→y is stored.
// In an undirected graph HasEdge(x, y) == HasEdge(y, x).
func (g *DynamicGraph[T]) HasEdge(x, y T) bool {
	return g.EdgeMultiplicity(x, y) > 0
}

// EdgeMultiplicity returns how many parallel arcs x→y are stored.
func (g *DynamicGraph[T]) EdgeMultiplicity(x, y T) int {
	out, ok := g.forward[x]
	if !ok {
		return 0
	}

	return out.Count(y)
}

// OutDegree returns the number of arcs leaving v, with multiplicity.
// Missing vertices have degree 0.
func (g *DynamicGraph[T]) OutDegree(v T) int {
	if out, ok := g.forward[v]; ok {
		return out.Len()
	}
	return 0
}

// InDegree returns the number of arcs entering v, with multiplicity.
func (g *DynamicGraph[T]) InDegree(v T) int {
	if in, ok := g.backward[v]; ok {
		return in.Len()
	}
	return 0
}

// Vertices returns all vertices in ascending order.
// Complexity: O(V log V).
func (g *DynamicGraph[T]) Vertices() []T {
	out := make([]T, 0, len(g.forward))
	for v := range g.forward {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// VertexSet returns a snapshot of the vertex set.
func (g *DynamicGraph[T]) VertexSet() mapset.Set[T] {
	set := mapset.NewThreadUnsafeSetWithSize[T](len(g.forward))
	for v := range g.forward {
		set.Add(v)
	}

	return set
}

// Forward returns the out-neighbors of v, repeated by multiplicity.
// It returns nil if v is not a vertex.
func (g *DynamicGraph[T]) Forward(v T) []T {
	out, ok := g.forward[v]
	if !ok {
		return nil
	}

	return SortedItems(out)
}

// Backward returns the in-neighbors of v, repeated by multiplicity.
// It returns nil if v is not a vertex.
func (g *DynamicGraph[T]) Backward(v T) []T {
	in, ok := g.backward[v]
	if !ok {
		return nil
	}

	return SortedItems(in)
}

// Successors returns the distinct out-neighbors of v.
func (g *DynamicGraph[T]) Successors(v T) []T {
	out, ok := g.forward[v]
	if !ok {
		return nil
	}

	return SortedDistinct(out)
}

// Predecessors returns the distinct in-neighbors of v.
func (g *DynamicGraph[T]) Predecessors(v T) []T {
	in, ok := g.backward[v]
	if !ok {
		return nil
	}

	return SortedDistinct(in)
}

// ForwardView returns a snapshot of the whole forward adjacency:
// vertex → sorted out-neighbors with multiplicity. Isolated vertices map to
// an empty slice.
// Complexity: O(V + E log E).
func (g *DynamicGraph[T]) ForwardView() map[T][]T {
	return snapshot(g.forward)
}

// BackwardView is ForwardView for the reverse index.
func (g *DynamicGraph[T]) BackwardView() map[T][]T {
	return snapshot(g.backward)
}

func snapshot[T constraints.Ordered](adj map[T]*Multiset[T]) map[T][]T {
	out := make(map[T][]T, len(adj))
	for v, m := range adj {
		out[v] = SortedItems(m)
	}

	return out
}
