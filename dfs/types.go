// Package dfs defines types and options for depth-first search over a
// dyngraph.DynamicGraph, including cancellation, pre-/post-order hooks,
// depth limiting, neighbor filtering, full-graph (forest) traversal, and
// basic diagnostics.
package dfs

import (
	"context"
	"errors"
)

// Visitation states used by TopologicalSort.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current path.
	Black        // Black: the vertex and all its descendants are finished.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS or
	// TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that TopologicalSort met a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirectedGraph indicates TopologicalSort was called on an
	// undirected graph.
	ErrUndirectedGraph = errors.New("dfs: topological sort requires a directed graph")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option[T any] func(*Options[T])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[T any] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked each time a vertex is entered.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id T) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before it is appended to Result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(id T) error

	// MaxDepth, if non-negative, limits the search depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before
	// descending. Return false to skip it.
	FilterNeighbor func(id T) bool

	// FullTraversal, if true, restarts DFS from every unvisited vertex in
	// ascending order, covering disconnected parts (forest traversal).
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit, no filter and single-source traversal.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext[T any](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[T any](fn func(id T) error) Option[T] {
	return func(o *Options[T]) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[T any](fn func(id T) error) Option[T] {
	return func(o *Options[T]) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit; 0 visits only the start.
func WithMaxDepth[T any](limit int) Option[T] {
	return func(o *Options[T]) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false; each skip
// is counted in Result.SkippedNeighbors.
func WithFilterNeighbor[T any](fn func(id T) bool) Option[T] {
	return func(o *Options[T]) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over every vertex.
func WithFullTraversal[T any]() Option[T] {
	return func(o *Options[T]) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result[T comparable] struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []T

	// Depth maps each visited vertex to its depth in its DFS tree.
	Depth map[T]int

	// Parent maps each vertex to the vertex it was discovered from.
	// Roots have no entry.
	Parent map[T]T

	// Visited flags which vertices were reached.
	Visited map[T]bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
