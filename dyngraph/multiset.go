// SPDX-License-Identifier: MIT
//
// File: multiset.go
// Role: counted multiset used for forward/backward adjacency.
// Policy:
//   - Removal drops exactly one occurrence unless RemoveAll is used.
//   - A key whose multiplicity reaches zero is deleted from the map.

package dyngraph

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Multiset is a bag of comparable values stored as value → multiplicity.
// The zero value is not usable; call NewMultiset.
type Multiset[T comparable] struct {
	counts map[T]int
	total  int
}

// NewMultiset returns an empty multiset.
func NewMultiset[T comparable]() *Multiset[T] {
	return &Multiset[T]{counts: make(map[T]int)}
}

// Add inserts one occurrence of x.
func (m *Multiset[T]) Add(x T) {
	m.counts[x]++
	m.total++
}

// Remove deletes one occurrence of x and reports whether one was present.
func (m *Multiset[T]) Remove(x T) bool {
	c, ok := m.counts[x]
	if !ok {
		return false
	}
	if c == 1 {
		delete(m.counts, x)
	} else {
		m.counts[x] = c - 1
	}
	m.total--

	return true
}

// RemoveAll deletes every occurrence of x and returns how many there were.
func (m *Multiset[T]) RemoveAll(x T) int {
	c := m.counts[x]
	if c == 0 {
		return 0
	}
	delete(m.counts, x)
	m.total -= c

	return c
}

// Count returns the multiplicity of x.
func (m *Multiset[T]) Count(x T) int { return m.counts[x] }

// Contains reports whether x occurs at least once.
func (m *Multiset[T]) Contains(x T) bool { return m.counts[x] > 0 }

// Len returns the number of occurrences, counting duplicates.
func (m *Multiset[T]) Len() int { return m.total }

// Distinct returns the number of distinct values.
func (m *Multiset[T]) Distinct() int { return len(m.counts) }

// Each calls fn for every distinct value with its multiplicity, in
// unspecified order, until fn returns false.
func (m *Multiset[T]) Each(fn func(x T, count int) bool) {
	for x, c := range m.counts {
		if !fn(x, c) {
			return
		}
	}
}

// Clone returns an independent copy.
func (m *Multiset[T]) Clone() *Multiset[T] {
	out := &Multiset[T]{counts: make(map[T]int, len(m.counts)), total: m.total}
	for x, c := range m.counts {
		out.counts[x] = c
	}

	return out
}

// SortedItems returns every occurrence of m in ascending order, repeating
// each value by its multiplicity.
func SortedItems[T constraints.Ordered](m *Multiset[T]) []T {
	out := make([]T, 0, m.total)
	for x, c := range m.counts {
		for i := 0; i < c; i++ {
			out = append(out, x)
		}
	}
	slices.Sort(out)

	return out
}

// SortedDistinct returns the distinct values of m in ascending order.
func SortedDistinct[T constraints.Ordered](m *Multiset[T]) []T {
	out := make([]T, 0, len(m.counts))
	for x := range m.counts {
		out = append(out, x)
	}
	slices.Sort(out)

	return out
}
