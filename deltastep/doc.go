// Package deltastep computes single-source shortest-path distances on a
// directed graph with non-negative edge weights using Δ-stepping.
//
// Overview:
//
//   - Nodes are grouped into buckets of width Δ by tentative distance:
//     a node with distance d lives in bucket floor(d/Δ).
//   - Buckets are processed in increasing order. Inside a bucket, light edges
//     (w ≤ Δ) are relaxed repeatedly until the bucket stays empty; then the
//     heavy edges (w > Δ) of every node that passed through the bucket are
//     relaxed once.
//   - Edge scans of one round run in parallel; applying the results is
//     strictly sequential.
//
// Structure of one run:
//
//	bucketRing        B = max(1, ceil(maxWeight/Δ)) cyclic slots, logical
//	                  pointer j, physical slot j mod B.
//	distanceStore     dist[v] (+Inf until reached), optional pred[v];
//	                  tryRelax moves v between slots on strict improvement.
//	requestGenerator  frontier sharded round-robin over the executor's
//	                  workers; each worker fills its own map target→best
//	                  candidate; one goroutine then min-reduces the maps.
//	runner            outer loop: stop when every slot is empty; otherwise
//	                  run the light loop on slot j mod B, the heavy round on
//	                  the visited set, then j++ (exactly one step).
//
// Concurrency model:
//
//   - Workers only read the CSR snapshot and the distance array. Nothing
//     writes to either while a generation round is in flight.
//   - The reduce step and all bucket/distance mutation happen on the calling
//     goroutine after the executor's join barrier.
//   - Because the reduce is a pure minimum (ties broken by the smaller
//     predecessor id), results do not depend on the worker count or on
//     scheduling: 1 worker and 64 workers produce identical Dist and Pred.
//
// Preconditions (documented, not checked):
//
//   - All edge weights are ≥ 0. With a negative weight the run still
//     terminates but may report wrong distances. core.Graph already rejects
//     negative weights at construction time.
//
// Errors (sentinel):
//
//   - ErrNilGraph          the graph pointer is nil.
//   - ErrBadDelta          Δ is negative, NaN or infinite.
//   - ErrSourceOutOfRange  the source is outside [0, N) for N > 0.
//   - ErrBadWorkers        the worker count is below 1.
//   - ErrUnreachable       PathTo on a node with distance +Inf.
//   - ErrNoPredecessors    PathTo on a result computed without WithReturnPath.
//
// Example usage:
//
//	res, err := deltastep.Run(g,
//	    deltastep.Source(0),
//	    deltastep.WithDelta(1),
//	    deltastep.WithWorkers(8),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Dist)
package deltastep
