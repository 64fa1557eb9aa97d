// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// BFS ignores edge weights. It answers "which nodes can the source reach",
// the set that must end with a finite shortest-path distance.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/deltastep/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	csr   *core.CSR
	opts  BFSOptions
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		csr:   g.Compact(),
		opts:  o,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := range n {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = Unreached
	}

	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// enqueue marks id discovered at depth d with the given parent.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.queue[head]
		d := w.res.Depth[u]
		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(u, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}

		targets, weights := w.csr.OutEdges(u)
		for i, v := range targets {
			if w.res.Depth[v] != Unreached || !w.opts.FilterEdge(u, v, weights[i]) {
				continue
			}
			w.enqueue(v, d+1, u)
		}
	}

	return nil
}

// ReachableCount returns how many nodes start can reach, itself included.
func ReachableCount(g *core.Graph, start int) (int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return 0, err
	}

	return len(res.Order), nil
}
