// Package dfs implements depth-first traversal and topological sort on a
// dyngraph.DynamicGraph.
//
// What:
//
//   - DFS(g, start, opts...): explores as far as possible along each branch
//     before backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every vertex (WithFullTraversal)
//   - TopologicalSort(g): linear ordering of a directed acyclic graph,
//     ErrCycleDetected otherwise.
//
// Both walks keep an explicit stack instead of recursing, so path-shaped
// graphs with hundreds of thousands of vertices are fine. Successors are
// visited in ascending order, so results are reproducible.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
//   - ErrCycleDetected        cycle found by TopologicalSort
//   - ErrUndirectedGraph      TopologicalSort on an undirected graph
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
