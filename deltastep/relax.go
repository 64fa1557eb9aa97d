package deltastep

// relaxAll applies every merged request through tryRelax on the calling
// goroutine. Targets are distinct, so the map's iteration order does not
// matter. Returns the number of strict improvements.
func (r *runner) relaxAll(reqs map[int]request) int {
	improved := 0
	for v, q := range reqs {
		if r.store.tryRelax(v, q.dist, q.pred) {
			improved++
		}
	}
	r.stats.Relaxations += improved

	return improved
}
