// SPDX-License-Identifier: MIT
// Package: deltastep/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi-like; include each admissible edge independently with prob p.
//   - Default: ordered pairs (i,j), i asc then j asc; self-loops iff g.Looped().
//   - WithBidirectional: unordered pairs i<j, each kept pair emitted both ways.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required for 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.
// Determinism: fixed trial order ⇒ identical graphs for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deltastep/core"
)

// RandomSparse returns a Constructor that samples a random graph over n
// nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters (no side effects on invalid input).
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if !(p >= MinProbability && p <= MaxProbability) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Nodes.
		base := addNodes(g, n)

		// keep decides one Bernoulli trial; p ∈ {0,1} needs no RNG.
		keep := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		// 3) Edges, in a stable trial order.
		if cfg.bidirectional {
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if keep() {
						if err := connect(g, cfg, MethodRandomSparse, base+i, base+j, true); err != nil {
							return err
						}
					}
				}
			}

			return nil
		}

		loops := g.Looped()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if keep() {
					if err := connect(g, cfg, MethodRandomSparse, base+i, base+j, false); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
