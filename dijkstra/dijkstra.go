package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/deltastep/core"
)

// Dijkstra computes shortest distances from Options.Source to every node of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance, +Inf if unreachable (or beyond MaxDistance).
//   - prev: predecessor slice if ReturnPath=true (nil otherwise); prev[v] == u means
//     the shortest path to v goes through u. NoPredecessor for the source and
//     unreachable nodes.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must lie in [0, N) (ErrSourceOutOfRange).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) ([]float64, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 3) Validate Source range
	n := g.Order()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, cfg.Source, n)
	}

	// 4) Pre-scan all edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 5) Prepare state; every distance starts at +Inf.
	dist := make([]float64, n)
	for v := range dist {
		dist[v] = math.Inf(1)
	}
	var prev []int
	if cfg.ReturnPath {
		prev = make([]int, n)
		for v := range prev {
			prev[v] = NoPredecessor
		}
	}

	r := &runner{
		csr:     g.Compact(),
		options: cfg,
		dist:    dist,
		prev:    prev,
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 6) Run
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	csr     *core.CSR // read-only snapshot of the input graph
	options Options
	dist    []float64
	prev    []int // nil unless ReturnPath
	visited []bool
	pq      nodePQ
}

// init sets the source distance to zero and pushes it onto the heap.
func (r *runner) init() {
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unfinished node and relaxes its
// outgoing edges, until the heap is empty or the next distance exceeds
// MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// stale entry
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax improves every out-neighbor of u reachable through a traversable edge.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) {
	targets, weights := r.csr.OutEdges(u)
	for i, v := range targets {
		w := weights[i]
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		// lazy decrease-key: stale entries are skipped on pop
		heap.Push(&r.pq, nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is a heap entry: a node and the distance it was pushed with.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then id.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
