// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node, following
//     directed edges only.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: hop count from start (Unreached if never seen)
//   - Parent: predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), edge filtering and MaxDepth.
//
// Determinism
//
//	Neighbors are scanned in CSR order (ascending target id), so the visit
//	sequence is reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation, ctx or hook errors
//	}
//	n, _ := bfs.ReachableCount(g, 0)
package bfs
