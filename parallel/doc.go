// Package parallel provides the fork/join primitive used by deltastep's
// request generation: run one job per worker and block until every worker
// has reported completion.
//
// Two executors share the Executor interface:
//
//   - Pool keeps its goroutines alive across calls. Each Run hands one job
//     to each worker slot and waits on a sync.WaitGroup barrier. Use it when
//     Run is called many times (once per Δ-stepping phase).
//   - Spawner starts fresh goroutines on every Run through an errgroup.Group
//     and joins them with Wait. No state survives between calls.
//
// In both cases a single worker runs the job inline on the caller goroutine.
//
// RoundRobin shards a slice deterministically by position: worker w sees
// items w, w+W, w+2W, ….
package parallel
