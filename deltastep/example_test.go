package deltastep_test

import (
	"fmt"

	"github.com/katalvlaran/deltastep/core"
	"github.com/katalvlaran/deltastep/deltastep"
)

// ExampleRun computes distances on a four-node chain with one heavy shortcut.
func ExampleRun() {
	g := core.NewGraph(5)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(0, 2, 5)
	_ = g.AddEdge(2, 3, 1)

	res, err := deltastep.Run(g, deltastep.Source(0), deltastep.WithDelta(1), deltastep.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Dist)
	fmt.Println(res.Stats.Buckets, res.Stats.OuterIterations)
	// Output:
	// [0 1 2 3 +Inf]
	// 5 4
}

// ExampleResult_PathTo reconstructs a shortest path from recorded predecessors.
func ExampleResult_PathTo() {
	g := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 0.5)
	_ = g.AddEdge(1, 3, 1)

	res, _ := deltastep.Run(g, deltastep.WithReturnPath())
	path, err := res.PathTo(3)
	fmt.Println(path, res.Dist[3], err)
	// Output: [0 2 1 3] 2.5 <nil>
}

// ExampleWithHook prints the phase sequence of a tiny run.
func ExampleWithHook() {
	g := core.NewGraph(2)
	_ = g.AddEdge(0, 1, 3)

	_, _ = deltastep.Run(g, deltastep.WithDelta(1), deltastep.WithHook(func(s deltastep.Snapshot) {
		fmt.Println(s.Kind, s.Pointer, s.Buckets)
	}))
	// Output:
	// init 0 [[0] [] []]
	// light 0 [[] [] []]
	// heavy 0 [[1] [] []]
	// light 3 [[] [] []]
	// heavy 3 [[] [] []]
	// done 4 [[] [] []]
}
