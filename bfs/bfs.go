package bfs

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlalgo/dyngraph"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[T any] struct {
	id    T
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T constraints.Ordered] struct {
	graph   *dyngraph.DynamicGraph[T]
	opts    Options[T]
	ctx     context.Context
	queue   []queueItem[T]
	visited mapset.Set[T]
	res     *Result[T]
}

// BFS runs breadth-first search on g starting from start, following
// out-arcs (both directions in an undirected graph), and applying any number
// of functional Options. Neighbors are enqueued in ascending order, so Order
// is reproducible.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or a wrapped
// OnVisit error.
//
// Complexity: Time O(V + E log d), Memory O(V).
func BFS[T constraints.Ordered](g *dyngraph.DynamicGraph[T], start T, opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.Size()
	w := &walker[T]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[T], 0, n),
		visited: mapset.NewThreadUnsafeSetWithSize[T](n),
		res: &Result[T]{
			Order:  make([]T, 0, n),
			Depth:  make(map[T]int, n),
			Parent: make(map[T]T, n),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and appends it to the queue.
func (w *walker[T]) enqueue(id T, d int) {
	w.visited.Add(id)
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[T]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.id, item.depth)

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Successors(item.id) {
			if w.visited.Contains(nbr) || !w.opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			w.res.Parent[nbr] = item.id
			w.enqueue(nbr, next)
		}
	}

	return nil
}
