package dfs

import (
	"context"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlalgo/dyngraph"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort orders the vertices of a directed graph so that every arc
// u→v has u before v. Roots and successors are taken in ascending order, so
// the result is deterministic. A self-loop is a cycle.
//
// Errors:
//   - ErrGraphNil, ErrUndirectedGraph, ErrCycleDetected, ctx.Err().
//
// Complexity: Time O(V + E log d), Memory O(V).
func TopologicalSort[T constraints.Ordered](g *dyngraph.DynamicGraph[T], options ...TopoOption) ([]T, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	state := make(map[T]int, len(verts))
	order := make([]T, 0, len(verts))
	var stack []frame[T]

	for _, root := range verts {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		stack = append(stack[:0], frame[T]{id: root, next: g.Successors(root)})

		for len(stack) > 0 {
			select {
			case <-opts.ctx.Done():
				return nil, opts.ctx.Err()
			default:
			}

			top := &stack[len(stack)-1]
			if top.i == len(top.next) {
				state[top.id] = Black
				order = append(order, top.id)
				stack = stack[:len(stack)-1]
				continue
			}

			nid := top.next[top.i]
			top.i++
			switch state[nid] {
			case Gray:
				return nil, ErrCycleDetected
			case White:
				state[nid] = Gray
				stack = append(stack, frame[T]{id: nid, next: g.Successors(nid)})
			}
		}
	}

	// reverse post-order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
