package dyngraph

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// CountComponents returns the number of weakly connected components: every
// arc is treated as bidirectional, and every vertex, isolated or not, belongs
// to exactly one component. An empty graph has 0 components.
//
// The search is an iterative depth-first walk with an explicit stack, so a
// long path does not deepen the Go call stack.
//
// Complexity: Time O(V + E), Memory O(V).
func (g *DynamicGraph[T]) CountComponents() int {
	count := 0
	g.walkComponents(func(T, []T) { count++ }, false)

	return count
}

// Components returns the weakly connected components. Each component is
// sorted ascending and components are ordered by their smallest vertex.
//
// Complexity: Time O(V log V + E), Memory O(V).
func (g *DynamicGraph[T]) Components() [][]T {
	var comps [][]T
	g.walkComponents(func(_ T, members []T) {
		slices.Sort(members)
		comps = append(comps, members)
	}, true)

	return comps
}

// walkComponents runs one traversal per unvisited root, in ascending root
// order, and reports each finished component. members is nil unless collect
// is set.
func (g *DynamicGraph[T]) walkComponents(emit func(root T, members []T), collect bool) {
	visited := mapset.NewThreadUnsafeSetWithSize[T](len(g.forward))
	stack := make([]T, 0)

	push := func(x T, _ int) bool {
		if visited.Add(x) {
			stack = append(stack, x)
		}
		return true
	}

	for _, root := range g.Vertices() {
		if visited.Contains(root) {
			continue
		}

		var members []T
		visited.Add(root)
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if collect {
				members = append(members, u)
			}
			g.forward[u].Each(push)
			g.backward[u].Each(push)
		}

		emit(root, members)
	}
}
