package deltastep

import (
	"github.com/katalvlaran/deltastep/core"
	"github.com/katalvlaran/deltastep/parallel"
)

// edgeClass selects which out-edges a generation round scans.
type edgeClass uint8

const (
	lightEdges edgeClass = iota // w ≤ Δ
	heavyEdges                  // w > Δ
)

func (c edgeClass) String() string {
	if c == lightEdges {
		return "light"
	}

	return "heavy"
}

// request is a candidate distance for some target, proposed via pred.
type request struct {
	dist float64
	pred int
}

// better orders requests by distance, then by predecessor id. The order is
// total, so min-reduction is commutative and associative.
func (a request) better(b request) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.pred < b.pred
}

// requestGenerator scans frontier edges in parallel and min-reduces the
// per-worker findings into one map.
type requestGenerator struct {
	csr   *core.CSR
	delta float64
	exec  parallel.Executor

	locals []map[int]request // one per worker, reused across rounds
	counts []int             // edges scanned per worker in the last round
	merged map[int]request   // reduce target, reused across rounds
}

func newRequestGenerator(csr *core.CSR, delta float64, exec parallel.Executor) *requestGenerator {
	w := exec.Workers()
	g := &requestGenerator{
		csr:    csr,
		delta:  delta,
		exec:   exec,
		locals: make([]map[int]request, w),
		counts: make([]int, w),
		merged: make(map[int]request),
	}
	for i := range g.locals {
		g.locals[i] = make(map[int]request)
	}

	return g
}

// matches reports whether an edge of weight w belongs to class c.
func (g *requestGenerator) matches(c edgeClass, w float64) bool {
	if c == lightEdges {
		return w <= g.delta
	}

	return w > g.delta
}

// generate proposes dist[u]+w for every class-c edge u→v with u in frontier.
//
// dist is read, never written, while workers run. The returned map is owned
// by the generator and valid until the next call. scanned is the number of
// matching edges examined (before reduction).
func (g *requestGenerator) generate(frontier []int, c edgeClass, dist []float64) (reqs map[int]request, scanned int, err error) {
	clear(g.merged)
	if len(frontier) == 0 {
		return g.merged, 0, nil
	}

	workers := g.exec.Workers()
	err = g.exec.Run(func(w int) {
		local := g.locals[w]
		clear(local)
		n := 0
		for u := range parallel.RoundRobin(frontier, workers, w) {
			du := dist[u]
			targets, weights := g.csr.OutEdges(u)
			for i, v := range targets {
				if !g.matches(c, weights[i]) {
					continue
				}
				n++
				cand := request{dist: du + weights[i], pred: u}
				if cur, ok := local[v]; !ok || cand.better(cur) {
					local[v] = cand
				}
			}
		}
		g.counts[w] = n
	})
	if err != nil {
		return nil, 0, err
	}

	// Reduce on the caller goroutine, after the barrier.
	for w, local := range g.locals {
		scanned += g.counts[w]
		for v, cand := range local {
			if cur, ok := g.merged[v]; !ok || cand.better(cur) {
				g.merged[v] = cand
			}
		}
	}

	return g.merged, scanned, nil
}
