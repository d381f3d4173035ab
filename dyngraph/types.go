// File: types.go
// Role: DynamicGraph type, options and constructor.

package dyngraph

import "golang.org/x/exp/constraints"

// Option configures a DynamicGraph before creation.
type Option func(*options)

type options struct {
	directed bool
}

// WithDirected sets the orientation of every edge in the graph
// (true = directed, false = undirected). The default is undirected.
func WithDirected(directed bool) Option {
	return func(o *options) { o.directed = directed }
}

// DynamicGraph stores adjacency as per-vertex multisets.
//
// forward[v] holds the out-neighbors of v and backward[v] its in-neighbors;
// backward is kept as the exact transpose of forward, multiplicities
// included. Every vertex has an entry in both maps, possibly empty.
//
// In an undirected graph an edge {x, y} with x != y is stored as the two
// arcs x→y and y→x; an undirected self-loop is stored as the single arc v→v.
// edges counts logical edges, one per successful Add, regardless of how many
// arcs back it.
type DynamicGraph[T constraints.Ordered] struct {
	directed bool
	edges    int

	forward  map[T]*Multiset[T]
	backward map[T]*Multiset[T]
}

// New creates an empty graph. By default the graph is undirected.
// Complexity: O(1).
func New[T constraints.Ordered](opts ...Option) *DynamicGraph[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &DynamicGraph[T]{
		directed: o.directed,
		forward:  make(map[T]*Multiset[T]),
		backward: make(map[T]*Multiset[T]),
	}
}

// Directed reports the construction-time orientation flag.
func (g *DynamicGraph[T]) Directed() bool { return g.directed }
