package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/deltastep/core"
	"github.com/katalvlaran/deltastep/dijkstra"
)

// ExampleDijkstra demonstrates distances and predecessors on a small
// directed graph.
func ExampleDijkstra() {
	// 0→1 (2), 0→2 (1), 2→1 (1), 1→3 (3), 2→3 (5)
	g := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 1)
	_ = g.AddEdge(1, 3, 3)
	_ = g.AddEdge(2, 3, 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	fmt.Println(prev)
	// Output:
	// [0 2 1 5]
	// [-1 0 0 1]
}
