// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deltastep/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// on a multigraph are safe and every edge is recorded.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g := core.NewGraph(num+1, core.WithMultiEdges())
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(0, id+1, float64(id)))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, float64(num-1), g.MaxWeight())
}

// TestConcurrentReadsAndCompact validates concurrent readers, node growth
// and snapshotting do not race with each other.
func TestConcurrentReadsAndCompact(t *testing.T) {
	g := core.NewGraph(50, core.WithLoops())
	for i := 0; i < 49; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers * 2)
	for i := 0; i < readers; i++ {
		go func(u int) {
			defer wg.Done()
			_, _ = g.Neighbors(u)
			_ = g.Edges()
		}(i)
		go func() {
			defer wg.Done()
			c := g.Compact()
			require.GreaterOrEqual(t, c.Size(), 49)
			g.AddNode()
		}()
	}
	wg.Wait()
	require.Equal(t, 50+readers, g.Order())
}
