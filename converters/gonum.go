package converters

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/deltastep/core"
)

// Sentinel errors for conversions.
var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrSparseIDs indicates that a gonum graph's node ids are not exactly 0..n-1.
	ErrSparseIDs = errors.New("converters: node ids are not dense")

	// ErrSourceOutOfRange indicates that the source id is not a node of the graph.
	ErrSourceOutOfRange = errors.New("converters: source node out of range")
)

// ToGonum copies g into a new weighted directed gonum graph with node ids
// 0..N-1. Self-loops are dropped; of parallel edges only the lightest is kept.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) (*simple.WeightedDirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	out := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	csr := g.Compact()
	for u := 0; u < csr.Order(); u++ {
		out.AddNode(simple.Node(u))
	}
	for u := 0; u < csr.Order(); u++ {
		targets, weights := csr.OutEdges(u)
		for i, v := range targets {
			if u == v {
				continue
			}
			if prev := out.WeightedEdge(int64(u), int64(v)); prev != nil && prev.Weight() <= weights[i] {
				continue
			}
			out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(u), simple.Node(v), weights[i]))
		}
	}

	return out, nil
}

// FromGonum copies a weighted directed gonum graph whose node ids are
// exactly 0..n-1 into a new core.Graph. Edges are inserted in (from, to)
// order so the result does not depend on gonum's map iteration.
func FromGonum(src *simple.WeightedDirectedGraph, opts ...core.GraphOption) (*core.Graph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}

	nodes := graph.NodesOf(src.Nodes())
	n := len(nodes)
	for _, nd := range nodes {
		if nd.ID() < 0 || nd.ID() >= int64(n) {
			return nil, fmt.Errorf("%w: id %d with %d nodes", ErrSparseIDs, nd.ID(), n)
		}
	}

	var edges []core.Edge
	it := src.WeightedEdges()
	for it.Next() {
		e := it.WeightedEdge()
		edges = append(edges, core.Edge{From: int(e.From().ID()), To: int(e.To().ID()), Weight: e.Weight()})
	}
	slices.SortFunc(edges, func(a, b core.Edge) int {
		if a.From != b.From {
			return a.From - b.From
		}
		return a.To - b.To
	})

	g := core.NewGraph(n, opts...)
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("converters: edge %d→%d: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// GonumDistances returns shortest distances from source computed by
// gonum's path.DijkstraFrom; unreachable nodes get +Inf.
func GonumDistances(g *core.Graph, source int) ([]float64, error) {
	wg, err := ToGonum(g)
	if err != nil {
		return nil, err
	}
	n := g.Order()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}

	shortest := path.DijkstraFrom(simple.Node(source), wg)
	dist := make([]float64, n)
	for v := range dist {
		dist[v] = shortest.WeightTo(int64(v))
	}

	return dist, nil
}
