// Package lvlalgo is a small toolbox of classic algorithms and data
// structures for competitive programming and in-memory analysis.
//
// Everything lives in independent subpackages; none of them share state,
// perform I/O, or start goroutines:
//
//	segtree/    SegmentTree[T]: point update and range fold under any
//	            associative operation, O(log n) each
//	dyngraph/   DynamicGraph[T]: add/remove edges and vertices on the fly,
//	            parallel edges, self-loops, weak component counting
//	dfs/        depth-first traversal and topological sort over dyngraph
//	bfs/        breadth-first traversal and hop-shortest paths over dyngraph
//	dsu/        disjoint-set union with union by size and path compression
//	algebra/    gcd, lcm, least-prime-divisor sieve, Euler's totient,
//	            fast (modular) exponentiation, modular inverse
//
// Quick example:
//
//	st, _ := segtree.New(6, []int{10, 2, 14, 5, 5, 19}, 0, segtree.Sum[int])
//	sum, _ := st.Query(0, 3) // 31
//
//	g := dyngraph.New[int]()
//	g.Add(1, 2)
//	g.Add(2, 3)
//	g.Add(4, 5)
//	g.CountComponents() // 2
//
//	go get github.com/katalvlaran/lvlalgo
package lvlalgo
