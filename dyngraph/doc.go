// Package dyngraph provides DynamicGraph, an in-memory graph built for
// workloads that insert and delete edges and vertices on the fly.
//
// The graph G = (V, E) is stored as two maps of counted multisets:
//
//	forward[x]   out-neighbors of x, with multiplicity (parallel edges)
//	backward[y]  in-neighbors of y, the exact transpose of forward
//
// so that y ∈ forward[x] ⇔ x ∈ backward[y] holds for every pair at all times.
// The reverse index lets RemoveVertex purge incoming edges without scanning
// the whole graph.
//
// Orientation:
//
//   - New[T]() builds an undirected graph: Add(x, y) stores x→y and y→x.
//   - New[T](WithDirected(true)) stores only x→y.
//
// Semantics:
//
//   - Vertices appear implicitly on Add or explicitly on AddVertex.
//   - Parallel edges and self-loops are kept; each Add is one logical edge.
//   - RemoveEdge drops one occurrence; a missing edge (or vertex) is a normal
//     "false" outcome and never creates vertices.
//   - RemoveVertex drops the vertex and every incident edge in both directions.
//   - Size counts all vertices, isolated ones included.
//   - Edges counts logical edges: one per directed arc, or one per undirected
//     pair inserted by Add.
//   - CountComponents counts weakly connected components: every arc is
//     treated as bidirectional.
//
// Determinism:
//
//	Vertices, Forward, Backward, Successors, Predecessors and Components
//	return ascending results, so output built on them is reproducible.
//
// Complexity:
//
//	Add, RemoveEdge, AddVertex: O(1) expected
//	RemoveVertex(v):            O(deg(v)) expected
//	CountComponents:            O(V + E)
//
// A DynamicGraph is not safe for concurrent use.
package dyngraph
