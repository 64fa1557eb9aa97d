// SPDX-License-Identifier: MIT
// Package: deltastep/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Appends n nodes; emits (base+i-1) → (base+i) for i=1..n-1 in increasing order.
//   - WithBidirectional also adds the reverse edges.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deltastep/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		base := addNodes(g, n)
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, MethodPath, base+i-1, base+i, false); err != nil {
				return err
			}
		}

		return nil
	}
}
