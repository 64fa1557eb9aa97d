// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// It is the sequential reference that deltastep results are checked against
// (the CLI's --verify=dijkstra, and the equivalence tests).
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes in a graph with non-negative edge weights.
// It processes nodes in order of increasing distance using a min-heap,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); the heap may hold O(E) entries under lazy decrease-key.
//
// Options:
//
//   - Source:           id of the starting node (must be in [0, N)).
//   - ReturnPath:       if true, return the predecessor slice.
//   - MaxDistance:      optional cap on distances to explore; nodes beyond stay +Inf.
//   - InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//   - ErrNilGraph         if the provided graph pointer is nil.
//   - ErrSourceOutOfRange if the source id is not a node of the graph.
//   - ErrNegativeWeight   if a negative edge weight is detected in the graph.
//   - ErrBadMaxDistance   (panic) if MaxDistance < 0.
//   - ErrBadInfThreshold  (panic) if InfEdgeThreshold <= 0.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Distance to 3: %g, parent: %d\n", dist[3], prev[3])
package dijkstra
