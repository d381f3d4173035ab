package segtree

import "golang.org/x/exp/constraints"

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns a + b.
func Sum[T Number](a, b T) T { return a + b }

// Min returns the smaller of a and b (a on ties).
func Min[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b (a on ties).
func Max[T constraints.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}
