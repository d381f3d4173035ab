// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: SegmentTree type, Operation signature, sentinel errors.

package segtree

import "errors"

// Sentinel errors for segment tree construction and access.
var (
	// ErrEmpty indicates a tree was requested over fewer than one element.
	ErrEmpty = errors.New("segtree: size must be at least 1")

	// ErrSizeMismatch indicates the declared size differs from len(values).
	ErrSizeMismatch = errors.New("segtree: size does not match number of values")

	// ErrNilOperation indicates a nil fold operation.
	ErrNilOperation = errors.New("segtree: operation is nil")

	// ErrIndexOutOfRange indicates a position or range bound outside [0, n-1].
	ErrIndexOutOfRange = errors.New("segtree: index out of range")
)

// Operation is an associative binary function over T.
// It is not required to be commutative.
type Operation[T any] func(a, b T) T

// SegmentTree answers range folds and point updates over a fixed-size array.
//
// nodes is 1-indexed: nodes[1] is the root, nodes[2v] and nodes[2v+1] are the
// children of nodes[v]. Slot 0 is unused.
type SegmentTree[T any] struct {
	n      int          // element count, immutable
	leaves []T          // logical array, mutated only by Update
	nodes  []T          // fold tree, 4n slots
	zero   T            // returned for empty ranges only
	op     Operation[T] // associative fold
}
