package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeOutOfRange indicates an operation referenced a node id outside [0, N).
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be a finite number")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// From is the source node id.
	From int

	// To is the destination node id.
	To int

	// Weight is the non-negative cost of traversing the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same ordered pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is a directed weighted graph over the dense node range [0, N).
//
// mu guards adj, size and maxWeight. Node count is len(adj).
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool
	allowMulti bool

	// Storage
	adj       [][]Edge // adj[u] = outgoing edges of u, in insertion order
	size      int      // total edge count
	maxWeight float64  // largest weight seen so far
}

// NewGraph creates a Graph with n isolated nodes [0, n).
// Negative n is treated as zero.
// By default, loops and parallel edges are rejected.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{adj: make([][]Edge, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are allowed.
func (g *Graph) Multigraph() bool { return g.allowMulti }
