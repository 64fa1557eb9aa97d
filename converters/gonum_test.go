package converters_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/deltastep/builder"
	"github.com/katalvlaran/deltastep/converters"
	"github.com/katalvlaran/deltastep/core"
	"github.com/katalvlaran/deltastep/deltastep"
)

func TestToGonum_LoopsAndParallelEdges(t *testing.T) {
	g := core.NewGraph(3, core.WithLoops(), core.WithMultiEdges())
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(1, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 1))

	wg, err := converters.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, 3, wg.Nodes().Len())
	assert.Equal(t, 2, wg.Edges().Len())

	e := wg.WeightedEdge(0, 1)
	require.NotNil(t, e)
	assert.Equal(t, 2.0, e.Weight())
	assert.Nil(t, wg.WeightedEdge(1, 1))
}

func TestToGonum_Nil(t *testing.T) {
	_, err := converters.ToGonum(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)
	_, err = converters.FromGonum(nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)
}

func TestRoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(4), builder.WithUniformWeight(1, 5)},
		builder.RandomSparse(30, 0.2))
	require.NoError(t, err)

	wg, err := converters.ToGonum(g)
	require.NoError(t, err)
	back, err := converters.FromGonum(wg)
	require.NoError(t, err)
	assert.Equal(t, g.Order(), back.Order())
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestFromGonum_SparseIDs(t *testing.T) {
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	wg.AddNode(simple.Node(0))
	wg.AddNode(simple.Node(5))

	_, err := converters.FromGonum(wg)
	assert.ErrorIs(t, err, converters.ErrSparseIDs)
}

func TestGonumDistances(t *testing.T) {
	g := core.NewGraph(5)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(0, 2, 5))
	require.NoError(t, g.AddEdge(2, 3, 1))

	dist, err := converters.GonumDistances(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, math.Inf(1)}, dist)

	_, err = converters.GonumDistances(g, 7)
	assert.ErrorIs(t, err, converters.ErrSourceOutOfRange)
}

// TestGonumDistances_AgreeWithDeltaStepping cross-checks the two implementations.
func TestGonumDistances_AgreeWithDeltaStepping(t *testing.T) {
	for seed := uint64(10); seed < 14; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithExponentialWeight(0.2)},
			builder.RandomSparse(100, 0.05))
		require.NoError(t, err)

		want, err := converters.GonumDistances(g, 0)
		require.NoError(t, err)
		res, err := deltastep.Run(g, deltastep.WithWorkers(4))
		require.NoError(t, err)

		for v := range want {
			if math.IsInf(want[v], 1) {
				assert.True(t, math.IsInf(res.Dist[v], 1), "seed %d node %d", seed, v)
				continue
			}
			assert.InDelta(t, want[v], res.Dist[v], 1e-9, "seed %d node %d", seed, v)
		}
	}
}
