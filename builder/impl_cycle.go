// SPDX-License-Identifier: MIT
// Package: deltastep/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i → (i+1) mod n for i=0..n-1, closing edge last.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/deltastep/core"
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		base := addNodes(g, n)
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, MethodCycle, base+i, base+(i+1)%n, false); err != nil {
				return err
			}
		}

		return nil
	}
}
