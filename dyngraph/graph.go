// File: graph.go
// Role: mutations: Add, AddVertex, RemoveEdge, RemoveVertex, Clear.
// Invariants:
//   - forward and backward share the same key set (the vertex set).
//   - forward[x].Count(y) == backward[y].Count(x) for all x, y.
//   - edges equals the number of logical edges currently stored.

package dyngraph

// ensureVertex creates empty adjacency buckets for v if it is missing.
func (g *DynamicGraph[T]) ensureVertex(v T) {
	if _, ok := g.forward[v]; ok {
		return
	}
	g.forward[v] = NewMultiset[T]()
	g.backward[v] = NewMultiset[T]()
}

// link stores one arc from→to in both indexes. Both endpoints must exist.
func (g *DynamicGraph[T]) link(from, to T) {
	g.forward[from].Add(to)
	g.backward[to].Add(from)
}

// unlink removes one arc from→to from both indexes.
func (g *DynamicGraph[T]) unlink(from, to T) {
	g.forward[from].Remove(to)
	g.backward[to].Remove(from)
}

// Add inserts the edge x→y, and its mirror y→x when the graph is undirected.
// Missing endpoints are created. Self-loops and parallel edges are kept.
// The logical edge count grows by exactly one.
//
// Complexity: O(1) expected.
func (g *DynamicGraph[T]) Add(x, y T) {
	g.ensureVertex(x)
	g.ensureVertex(y)

	g.link(x, y)
	if !g.directed && x != y {
		g.link(y, x)
	}
	g.edges++
}

// AddVertex creates v with no edges. It is a no-op if v already exists;
// existing adjacency is never reset.
func (g *DynamicGraph[T]) AddVertex(v T) {
	g.ensureVertex(v)
}

// RemoveEdge removes one occurrence of x→y (and its mirror if undirected).
// It reports false and leaves the graph untouched when no such edge exists,
// including when x or y is not a vertex.
//
// Complexity: O(1) expected.
func (g *DynamicGraph[T]) RemoveEdge(x, y T) bool {
	out, ok := g.forward[x]
	if !ok || !out.Contains(y) {
		return false
	}

	g.unlink(x, y)
	if !g.directed && x != y {
		g.unlink(y, x)
	}
	g.edges--

	return true
}

// RemoveVertex deletes v and every edge incident to it, in both directions,
// so that no neighbor's forward or backward set still mentions v.
// It reports whether v existed.
//
// Edge accounting:
//   - Directed: every arc leaving or entering v is one logical edge; a self-loop
//     v→v sits in both forward[v] and backward[v] and is counted once.
//   - Undirected: every logical edge touching v has exactly one entry in
//     forward[v] (its arc leaving v), so forward[v].Len() edges are removed.
//
// Complexity: O(deg(v)) expected.
func (g *DynamicGraph[T]) RemoveVertex(v T) bool {
	out, ok := g.forward[v]
	if !ok {
		return false
	}
	in := g.backward[v]

	removed := out.Len()
	if g.directed {
		removed += in.Len() - out.Count(v)
	}

	out.Each(func(to T, _ int) bool {
		if to != v {
			g.backward[to].RemoveAll(v)
		}
		return true
	})
	in.Each(func(from T, _ int) bool {
		if from != v {
			g.forward[from].RemoveAll(v)
		}
		return true
	})

	delete(g.forward, v)
	delete(g.backward, v)
	g.edges -= removed

	return true
}

// Clear removes every vertex and edge, keeping the orientation flag.
func (g *DynamicGraph[T]) Clear() {
	g.forward = make(map[T]*Multiset[T])
	g.backward = make(map[T]*Multiset[T])
	g.edges = 0
}

// Clone returns a deep copy of the graph.
//
// Complexity: O(V + E).
func (g *DynamicGraph[T]) Clone() *DynamicGraph[T] {
	out := &DynamicGraph[T]{
		directed: g.directed,
		edges:    g.edges,
		forward:  make(map[T]*Multiset[T], len(g.forward)),
		backward: make(map[T]*Multiset[T], len(g.backward)),
	}
	for v, m := range g.forward {
		out.forward[v] = m.Clone()
	}
	for v, m := range g.backward {
		out.backward[v] = m.Clone()
	}

	return out
}
