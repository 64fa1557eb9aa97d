package deltastep

import "math"

// distanceStore owns the tentative distances (and optional predecessors)
// and keeps bucket membership in step with them.
//
// Not safe for concurrent mutation: tryRelax is only called from the
// sequential relaxation step. Concurrent read() during generation is fine.
type distanceStore struct {
	dist  []float64
	pred  []int // nil when predecessors are not tracked
	delta float64
	ring  *bucketRing
}

// newDistanceStore sets every distance to +Inf.
func newDistanceStore(n int, delta float64, ring *bucketRing, trackPred bool) *distanceStore {
	s := &distanceStore{
		dist:  make([]float64, n),
		delta: delta,
		ring:  ring,
	}
	for v := range s.dist {
		s.dist[v] = math.Inf(1)
	}
	if trackPred {
		s.pred = make([]int, n)
		for v := range s.pred {
			s.pred[v] = NoPredecessor
		}
	}

	return s
}

func (s *distanceStore) read(v int) float64 { return s.dist[v] }

// bucketIndex maps a finite distance to its physical slot:
// floor(d/Δ) mod B, computed in float64 so huge quotients cannot overflow int.
func (s *distanceStore) bucketIndex(d float64) int {
	return int(math.Mod(math.Floor(d/s.delta), float64(s.ring.size())))
}

// tryRelax applies candidate to v if it is strictly smaller than dist[v]:
// v leaves the bucket of its old distance (if it had one), joins the bucket
// of candidate, and dist/pred are overwritten. Returns false, touching
// nothing, otherwise.
func (s *distanceStore) tryRelax(v int, candidate float64, from int) bool {
	old := s.dist[v]
	if !(candidate < old) {
		return false
	}

	oldIdx := notBucketed
	if !math.IsInf(old, 1) {
		oldIdx = s.bucketIndex(old)
	}
	s.ring.move(v, oldIdx, s.bucketIndex(candidate))
	s.dist[v] = candidate
	if s.pred != nil {
		s.pred[v] = from
	}

	return true
}
