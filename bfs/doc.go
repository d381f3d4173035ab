// Package bfs provides breadth-first search over a dyngraph.DynamicGraph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual arcs via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or "no limit" (d==0).
//
// Orientation
//
//	A directed graph is walked along its arcs only. An undirected graph
//	stores every edge in both directions, so BFS reaches the whole connected
//	component of the start vertex. Parallel edges and self-loops never
//	produce duplicate visits.
//
// Determinism
//
//	Neighbors are enqueued in ascending order, so the visit sequence is
//	fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 1,
//	    bfs.WithMaxDepth[int](3),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//	path, err := res.PathTo(7)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from Result.PathTo for unreached vertices.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
