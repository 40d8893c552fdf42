// SPDX-License-Identifier: MIT

package graph_test

import (
	"fmt"

	"github.com/katalvlaran/kembed/graph"
)

// ExampleGraph_Extend shows that extension allocates a new graph and leaves
// the source untouched.
func ExampleGraph_Extend() {
	g := graph.New(2)
	g.AddEdge(0, 1, 2)

	big := g.Extend(3)
	big.AddEdge(2, 0, 1)

	fmt.Print(g)
	fmt.Print(big)
	fmt.Println("out-degree of 0:", big.OutDegree(0))
	// Output:
	// 2
	// 0 2
	// 0 0
	// 3
	// 0 2 0
	// 0 0 0
	// 1 0 0
	// out-degree of 0: 2
}

// ExampleGraph_OutgoingNeighbors iterates the non-zero cells of a row.
func ExampleGraph_OutgoingNeighbors() {
	g := graph.New(4)
	g.AddEdge(0, 3, 1)
	g.AddEdge(0, 1, 1)

	for v := range g.OutgoingNeighbors(0) {
		fmt.Println(v)
	}
	// Output:
	// 1
	// 3
}
