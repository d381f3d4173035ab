package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalgo/dfs"
	"github.com/katalvlaran/lvlalgo/dyngraph"
)

// ExampleDFS demonstrates a depth-first traversal (post-order) on a
// diamond-shaped graph.
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
func ExampleDFS() {
	g := dyngraph.New[string](dyngraph.WithDirected(true))
	for _, edge := range []struct{ U, V string }{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"C", "D"},
		{"D", "E"}, {"D", "F"},
	} {
		g.Add(edge.U, edge.V)
	}

	res, err := dfs.DFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(res.Order, " "))

	// Output:
	// E F D B C A
}

// ExampleTopologicalSort orders a small build pipeline.
func ExampleTopologicalSort() {
	g := dyngraph.New[string](dyngraph.WithDirected(true))
	g.Add("fetch", "compile")
	g.Add("compile", "test")
	g.Add("compile", "package")
	g.Add("test", "package")

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(order, " -> "))

	// Output:
	// fetch -> compile -> test -> package
}
