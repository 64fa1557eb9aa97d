// File: methods.go
// Role: Node/edge lifecycle and read queries.
// Determinism:
//   - Neighbors(u) preserves insertion order.
//   - Edges() is sorted by (From, To, Weight).
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddNode appends a new isolated node and returns its id (== previous Order()).
// Complexity: O(1) amortized.
func (g *Graph) AddNode() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj = append(g.adj, nil)

	return len(g.adj) - 1
}

// AddEdge inserts the directed edge from→to with the given weight.
//
// Steps:
//  1. Validate weight (finite, non-negative).
//  2. Lock, validate both endpoints are in [0, N).
//  3. Reject loops / parallel edges per graph flags.
//  4. Append to adj[from] and refresh maxWeight.
//
// Complexity: O(1), or O(deg(from)) when parallel edges are disallowed.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	// 1) Weight validation does not need the lock.
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %d→%d weight=%g", ErrBadWeight, from, to, weight)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %d→%d weight=%g", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Endpoints
	if err := g.checkNode(from); err != nil {
		return err
	}
	if err := g.checkNode(to); err != nil {
		return err
	}

	// 3) Mode constraints
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.allowMulti {
		for _, e := range g.adj[from] {
			if e.To == to {
				return ErrMultiEdgeNotAllowed
			}
		}
	}

	// 4) Store
	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Weight: weight})
	g.size++
	if weight > g.maxWeight {
		g.maxWeight = weight
	}

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Out-of-range ids simply yield false.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if from < 0 || from >= len(g.adj) {
		return false
	}
	for _, e := range g.adj[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// Neighbors returns a copy of the outgoing edges of u in insertion order.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(u); err != nil {
		return nil, err
	}
	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Edges returns every edge, sorted by (From, To, Weight) for stable output.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.size)
	for _, list := range g.adj {
		out = append(out, list...)
	}
	g.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].Weight < out[j].Weight
	})

	return out
}

// Order returns the number of nodes N.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.size
}

// MaxWeight returns the largest edge weight, or 0 for an edgeless graph.
func (g *Graph) MaxWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxWeight
}

// OutDegree returns the number of outgoing edges of u.
func (g *Graph) OutDegree(u int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(u); err != nil {
		return 0, err
	}

	return len(g.adj[u]), nil
}

// Clone returns a deep copy: flags, nodes and edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		adj:        make([][]Edge, len(g.adj)),
		size:       g.size,
		maxWeight:  g.maxWeight,
	}
	for u, list := range g.adj {
		if len(list) == 0 {
			continue
		}
		out.adj[u] = append([]Edge(nil), list...)
	}

	return out
}

// checkNode validates an id against the current node range. Caller holds mu.
func (g *Graph) checkNode(u int) error {
	if u < 0 || u >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrNodeOutOfRange, u, len(g.adj))
	}

	return nil
}
