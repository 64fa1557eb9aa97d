// Package core provides a compact, thread-safe, directed weighted graph over
// dense integer node ids, plus an immutable CSR snapshot for read-heavy
// parallel algorithms.
//
// The Graph G = (V,E) is shaped for shortest-path work:
//
//   - Nodes are the dense range [0, N); AddNode appends the next id.
//   - Edges are directed From→To with a float64 Weight ≥ 0.
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops) are opt-in.
//   - A single sync.RWMutex guards the adjacency; readers never block readers.
//
// Why a separate CSR?
//
//	Algorithms that scan edges from many goroutines at once (deltastep) must
//	not contend on the graph lock. Compact() copies the adjacency once into
//	three flat slices (Offsets, Targets, Weights). The snapshot is never
//	mutated afterwards, so any number of goroutines may read it freely.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Allows several edges between the same ordered pair.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) *Graph // O(n)
//	AddNode() int                               // O(1) amortized
//	AddEdge(from, to int, w float64) error      // O(1)†
//	HasEdge(from, to int) bool                  // O(deg(from))
//	Neighbors(u int) ([]Edge, error)            // O(deg(u))
//	Edges() []Edge                              // O(E log E), sorted
//	Order() / Size() / MaxWeight()              // O(1)
//	Clone() *Graph                              // O(V+E)
//	Compact() *CSR                              // O(V+E)
//
// † O(deg(from)) when parallel edges are disallowed (duplicate check).
//
// Errors:
//
//	ErrNodeOutOfRange      - node id outside [0, N).
//	ErrBadWeight           - weight is NaN or ±Inf.
//	ErrNegativeWeight      - weight < 0.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
