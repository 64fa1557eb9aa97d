// File: csr.go
// Role: Immutable compressed-sparse-row snapshot of a Graph.
// Concurrency:
//   - Built under the graph read lock; the result is never mutated and may be
//     shared by any number of goroutines.

package core

// CSR is a read-only adjacency snapshot.
//
// The out-edges of u are Targets[Offsets[u]:Offsets[u+1]] with matching
// Weights. len(Offsets) == N+1.
type CSR struct {
	Offsets []int
	Targets []int
	Weights []float64

	// MaxWeight is the largest weight in Weights (0 when there are no edges).
	MaxWeight float64

	// MinPositiveWeight is the smallest weight > 0 (0 when none exists).
	MinPositiveWeight float64

	// MaxOutDegree is the largest out-degree over all nodes.
	MaxOutDegree int
}

// Compact copies the adjacency into a CSR snapshot, preserving the
// per-node insertion order of edges.
// Complexity: O(V + E).
func (g *Graph) Compact() *CSR {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adj)
	c := &CSR{
		Offsets:   make([]int, n+1),
		Targets:   make([]int, 0, g.size),
		Weights:   make([]float64, 0, g.size),
		MaxWeight: g.maxWeight,
	}
	for u, list := range g.adj {
		c.Offsets[u] = len(c.Targets)
		if len(list) > c.MaxOutDegree {
			c.MaxOutDegree = len(list)
		}
		for _, e := range list {
			c.Targets = append(c.Targets, e.To)
			c.Weights = append(c.Weights, e.Weight)
			if e.Weight > 0 && (c.MinPositiveWeight == 0 || e.Weight < c.MinPositiveWeight) {
				c.MinPositiveWeight = e.Weight
			}
		}
	}
	c.Offsets[n] = len(c.Targets)

	return c
}

// Order returns the number of nodes in the snapshot.
func (c *CSR) Order() int { return len(c.Offsets) - 1 }

// Size returns the number of edges in the snapshot.
func (c *CSR) Size() int { return len(c.Targets) }

// OutEdges returns the targets and weights of u's outgoing edges.
// The returned slices alias the snapshot and must not be modified.
func (c *CSR) OutEdges(u int) ([]int, []float64) {
	lo, hi := c.Offsets[u], c.Offsets[u+1]

	return c.Targets[lo:hi], c.Weights[lo:hi]
}
