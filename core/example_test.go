package core_test

import (
	"fmt"

	"github.com/katalvlaran/deltastep/core"
)

// ExampleGraph_Compact builds a small graph and walks its CSR snapshot.
func ExampleGraph_Compact() {
	g := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 2, 4)
	_ = g.AddEdge(1, 2, 2)

	c := g.Compact()
	for u := 0; u < c.Order(); u++ {
		ts, ws := c.OutEdges(u)
		fmt.Println(u, ts, ws)
	}
	// Output:
	// 0 [1 2] [1 4]
	// 1 [2] [2]
	// 2 [] []
}
