// SPDX-License-Identifier: MIT
// Package: deltastep/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first appended node (base); leaves are base+1..base+n-1.
//   - Each spoke is emitted hub→leaf then leaf→hub with the same weight.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deltastep/core"
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		hub := addNodes(g, n)
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, MethodStar, hub, hub+i, true); err != nil {
				return err
			}
		}

		return nil
	}
}
