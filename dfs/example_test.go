// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/dfs"
	"github.com/katalvlaran/algoviz/graph"
)

// ExampleDFS demonstrates a depth-first walk on a directed chain with a branch.
//
//	A -> B -> C
//	 \
//	  -> D
func ExampleDFS() {
	g := graph.New(graph.WithDirected())
	for _, l := range []string{"A", "B", "C", "D"} {
		_, _ = g.AddVertex(l)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 3}} {
		_ = g.AddEdge(e[0], e[1])
	}

	seq, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	last, _ := seq.Last()
	order, _ := last.Scalar("order")
	fmt.Println(order)
	// Output: A, B, C, D
}
