// Package builder provides internal helper functions used by Constructor
// implementations to add nodes and emit weighted edges uniformly.
package builder

import (
	"fmt"

	"github.com/katalvlaran/deltastep/core"
)

// addNodes appends n fresh nodes to g and returns the id of the first one.
// Constructors address their nodes as base+i, so several constructors can
// be composed in one BuildGraph call without id clashes.
// Complexity: O(n).
func addNodes(g *core.Graph, n int) int {
	base := g.Order()
	for i := 0; i < n; i++ {
		g.AddNode()
	}

	return base
}

// connect draws one weight and adds u→v; when mirror (or the config's
// bidirectional flag) is set, v→u is added with the same weight.
// Errors are wrapped with the method tag.
func connect(g *core.Graph, cfg builderConfig, method string, u, v int, mirror bool) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, w, err)
	}
	if mirror || cfg.bidirectional {
		if err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}
