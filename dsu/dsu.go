// Package dsu implements a disjoint-set union (union-find) over 1-based
// integer elements, with union by size and path compression.
//
// Elements are numbered 1..Size(). New elements can be appended with
// AddNode; Reset discards every set and starts over.
//
// Complexity: Find and Union run in amortized O(α(n)).
package dsu

import (
	"errors"
	"fmt"
)

// ErrElementNotFound indicates an element outside 1..Size().
var ErrElementNotFound = errors.New("dsu: element not found")

// DSU is a disjoint-set forest. The zero value is an empty, usable set.
type DSU struct {
	parent []int // parent[0] is a placeholder so elements are 1-based
	size   []int // size[root] is the number of elements in root's tree
	sets   int
}

// New returns a DSU with n singleton sets {1}, …, {n}.
func New(n int) *DSU {
	d := &DSU{}
	d.Reset(n)

	return d
}

// Reset discards all sets and creates n singletons.
func (d *DSU) Reset(n int) {
	if n < 0 {
		n = 0
	}
	d.parent = make([]int, 1, n+1)
	d.size = make([]int, 1, n+1)
	d.sets = 0
	for i := 0; i < n; i++ {
		d.AddNode()
	}
}

// AddNode appends a new singleton set and returns its element index.
func (d *DSU) AddNode() int {
	if len(d.parent) == 0 {
		d.parent = append(d.parent, 0)
		d.size = append(d.size, 0)
	}
	idx := len(d.parent)
	d.parent = append(d.parent, idx)
	d.size = append(d.size, 1)
	d.sets++

	return idx
}

// Size returns the number of elements.
func (d *DSU) Size() int {
	if len(d.parent) == 0 {
		return 0
	}

	return len(d.parent) - 1
}

// Sets returns the number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }

// Find returns the representative of v's set, compressing the path.
func (d *DSU) Find(v int) (int, error) {
	if v < 1 || v >= len(d.parent) {
		return 0, fmt.Errorf("%w: %d", ErrElementNotFound, v)
	}

	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[v] != root {
		d.parent[v], v = root, d.parent[v]
	}

	return root, nil
}

// Union merges the sets containing x and y. It reports true if they were
// distinct, false if already joined.
func (d *DSU) Union(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}
	if rx == ry {
		return false, nil
	}

	if d.size[rx] < d.size[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	d.sets--

	return true, nil
}

// Same reports whether x and y belong to the same set.
func (d *DSU) Same(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// SetSize returns the number of elements in v's set.
func (d *DSU) SetSize(v int) (int, error) {
	root, err := d.Find(v)
	if err != nil {
		return 0, err
	}

	return d.size[root], nil
}
