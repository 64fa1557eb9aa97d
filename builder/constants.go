// SPDX-License-Identifier: MIT
// Package: deltastep/builder
//
// constants.go — method tags and parameter minima shared by constructors.

package builder

// Method names, used to prefix constructor errors.
const (
	MethodCycle        = "Cycle"
	MethodPath         = "Path"
	MethodStar         = "Star"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
)

// Minimum node counts per topology.
const (
	// MinCycleNodes: fewer than 3 nodes cannot form a ring without loops or multi-edges.
	MinCycleNodes = 3
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinStarNodes: one hub plus at least one leaf.
	MinStarNodes = 2
	// MinCompleteNodes: K_1 is a single isolated node.
	MinCompleteNodes = 1
	// MinGridDim: a 1×1 grid has no edges but is valid.
	MinGridDim = 1
	// MinRandomSparseNodes: a single node is a valid (edgeless) sample.
	MinRandomSparseNodes = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
