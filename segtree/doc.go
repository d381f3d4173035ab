// Package segtree provides a fixed-size segment tree over a caller-supplied
// associative operation.
//
// What:
//
//   - SegmentTree[T] wraps an array of n elements in an array-backed binary
//     tree of 4n slots. Node v covers a contiguous index range [tl, tr] and
//     stores the fold of the operation over that range; its children are
//     2v and 2v+1, the root is 1.
//   - Query(l, r) folds A[l..r] left to right in O(log n).
//   - Update(pos, value) replaces one element and repairs the path to the
//     root in O(log n).
//
// Operation:
//
//	The operation must be associative. It does not have to be commutative:
//	Query always combines the left part before the right part, so string
//	concatenation, matrix products and similar folds are answered correctly.
//
// Zero value:
//
//	The zero value passed to New is returned for an empty range (l > r) and
//	is never fed into the operation. The tree does not assume that it is an
//	identity element, so a "max" tree with zero = 0 over negative numbers is
//	still answered correctly.
//
// Errors:
//
//   - ErrEmpty            n < 1
//   - ErrSizeMismatch     n != len(values)
//   - ErrNilOperation     operation is nil
//   - ErrIndexOutOfRange  position or bound outside [0, n-1]
//
// Complexity:
//
//   - New:    Time O(n), Memory O(n)
//   - Query:  Time O(log n)
//   - Update: Time O(log n)
//
// A SegmentTree is not safe for concurrent mutation; callers that share one
// across goroutines must synchronize Update against Query themselves.
package segtree
