package dfs

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlalgo/dyngraph"
)

// frame is one entry of the explicit DFS stack.
type frame[T any] struct {
	id    T
	depth int
	next  []T // successors, ascending
	i     int // index of the next successor to try
}

// walker encapsulates state during DFS.
type walker[T constraints.Ordered] struct {
	graph *dyngraph.DynamicGraph[T]
	opts  Options[T]
	res   *Result[T]
	stack []frame[T]
}

// DFS performs depth-first search on g, following out-edges (both
// directions in an undirected graph). With WithFullTraversal it covers every
// vertex; otherwise it starts only from start.
//
// The search keeps its own stack, so a long path does not deepen the Go
// call stack. Successors are tried in ascending order, making Order
// reproducible.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound.
//   - ctx.Err() on cancellation.
//   - wrapped OnVisit/OnExit errors (Order is cleared).
//
// Complexity: Time O(V + E log d), Memory O(V).
func DFS[T constraints.Ordered](g *dyngraph.DynamicGraph[T], start T, opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions[T]()
	for _, fn := range opts {
		fn(&o)
	}

	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.Size()
	w := &walker[T]{
		graph: g,
		opts:  o,
		res: &Result[T]{
			Order:   make([]T, 0, n),
			Depth:   make(map[T]int, n),
			Parent:  make(map[T]T, n),
			Visited: make(map[T]bool, n),
		},
	}

	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if w.res.Visited[v] {
				continue
			}
			if err := w.traverse(v); err != nil {
				return w.res, err
			}
		}
	} else if err := w.traverse(start); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// traverse runs one DFS tree rooted at root.
func (w *walker[T]) traverse(root T) error {
	if err := w.enter(root, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		if top.i < len(top.next) {
			nid := top.next[top.i]
			top.i++

			if nid == top.id {
				continue // self-loop
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.res.SkippedNeighbors++
				continue
			}
			if w.res.Visited[nid] {
				continue
			}
			if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
				continue
			}

			w.res.Parent[nid] = top.id
			if err := w.enter(nid, top.depth+1); err != nil {
				return err
			}
			continue
		}

		// all successors done: post-order
		id := top.id
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(id); err != nil {
				w.res.Order = nil
				return fmt.Errorf("dfs: OnExit hook for %v: %w", id, err)
			}
		}
		w.res.Order = append(w.res.Order, id)
	}

	return nil
}

// enter marks id visited at depth, runs the pre-order hook and pushes a frame.
func (w *walker[T]) enter(id T, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", id, err)
		}
	}

	w.stack = append(w.stack, frame[T]{id: id, depth: depth, next: w.graph.Successors(id)})

	return nil
}
