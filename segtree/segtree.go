// SPDX-License-Identifier: MIT
//
// File: segtree.go
// Role: construction, range fold and point update.
// Determinism:
//   - Query combines left part before right part at every level.
//   - The zero value never reaches the operation.

package segtree

import "fmt"

// New builds a segment tree over the first n elements of values.
//
// Implementation:
//   - Stage 1: Validate n >= 1, n == len(values), op != nil.
//   - Stage 2: Copy values so the tree owns its storage.
//   - Stage 3: Build top-down: a leaf stores its array value, an internal
//     node stores op(left, right).
//
// Errors:
//   - ErrEmpty, ErrSizeMismatch, ErrNilOperation.
//
// Complexity:
//   - Time O(n), Space O(n) (4n node slots).
func New[T any](n int, values []T, zero T, op Operation[T]) (*SegmentTree[T], error) {
	if n < 1 {
		return nil, ErrEmpty
	}
	if n != len(values) {
		return nil, fmt.Errorf("%w: n=%d, len(values)=%d", ErrSizeMismatch, n, len(values))
	}
	if op == nil {
		return nil, ErrNilOperation
	}

	st := &SegmentTree[T]{
		n:      n,
		leaves: make([]T, n),
		nodes:  make([]T, 4*n),
		zero:   zero,
		op:     op,
	}
	copy(st.leaves, values)
	st.build(1, 0, n-1)

	return st, nil
}

// FromSlice builds a tree over all of values.
func FromSlice[T any](values []T, zero T, op Operation[T]) (*SegmentTree[T], error) {
	return New(len(values), values, zero, op)
}

// MustNew is like New but panics on error. Intended for tests and fixed inputs.
func MustNew[T any](n int, values []T, zero T, op Operation[T]) *SegmentTree[T] {
	st, err := New(n, values, zero, op)
	if err != nil {
		panic(err)
	}

	return st
}

// build fills node v covering [tl, tr].
func (st *SegmentTree[T]) build(v, tl, tr int) {
	if tl == tr {
		st.nodes[v] = st.leaves[tl]
		return
	}
	tm := (tl + tr) / 2
	st.build(2*v, tl, tm)
	st.build(2*v+1, tm+1, tr)
	st.nodes[v] = st.op(st.nodes[2*v], st.nodes[2*v+1])
}

// Query returns the left-to-right fold of the elements in [l, r].
//
// An empty range (l > r) yields the zero value and a nil error without
// invoking the operation; bounds are not checked in that case. Otherwise
// l and r must both lie in [0, n-1].
//
// Complexity: O(log n).
func (st *SegmentTree[T]) Query(l, r int) (T, error) {
	if l > r {
		return st.zero, nil
	}
	if l < 0 || r >= st.n {
		return st.zero, fmt.Errorf("%w: query [%d, %d] on size %d", ErrIndexOutOfRange, l, r, st.n)
	}

	return st.query(1, 0, st.n-1, l, r), nil
}

// query folds [l, r], which is non-empty and contained in [tl, tr].
// Only sides that intersect the range are visited, so no placeholder value
// is ever combined.
func (st *SegmentTree[T]) query(v, tl, tr, l, r int) T {
	if l == tl && r == tr {
		return st.nodes[v]
	}
	tm := (tl + tr) / 2
	switch {
	case r <= tm:
		return st.query(2*v, tl, tm, l, r)
	case l > tm:
		return st.query(2*v+1, tm+1, tr, l, r)
	default:
		left := st.query(2*v, tl, tm, l, tm)
		right := st.query(2*v+1, tm+1, tr, tm+1, r)
		return st.op(left, right)
	}
}

// Update replaces the element at pos and recomputes every ancestor fold
// along the single root-to-leaf path. Unrelated subtrees are untouched.
//
// Errors:
//   - ErrIndexOutOfRange if pos is outside [0, n-1]; the tree is unchanged.
//
// Complexity: O(log n).
func (st *SegmentTree[T]) Update(pos int, value T) error {
	if pos < 0 || pos >= st.n {
		return fmt.Errorf("%w: update position %d on size %d", ErrIndexOutOfRange, pos, st.n)
	}
	st.leaves[pos] = value
	st.update(1, 0, st.n-1, pos, value)

	return nil
}

func (st *SegmentTree[T]) update(v, tl, tr, pos int, value T) {
	if tl == tr {
		st.nodes[v] = value
		return
	}
	tm := (tl + tr) / 2
	if pos <= tm {
		st.update(2*v, tl, tm, pos, value)
	} else {
		st.update(2*v+1, tm+1, tr, pos, value)
	}
	st.nodes[v] = st.op(st.nodes[2*v], st.nodes[2*v+1])
}

// Len returns the fixed element count.
func (st *SegmentTree[T]) Len() int { return st.n }

// Zero returns the value reported for empty ranges.
func (st *SegmentTree[T]) Zero() T { return st.zero }

// At returns the element currently stored at pos.
func (st *SegmentTree[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= st.n {
		return st.zero, fmt.Errorf("%w: position %d on size %d", ErrIndexOutOfRange, pos, st.n)
	}

	return st.leaves[pos], nil
}

// Values returns a copy of the logical array.
func (st *SegmentTree[T]) Values() []T {
	out := make([]T, st.n)
	copy(out, st.leaves)

	return out
}
