package deltastep

import "slices"

// notBucketed marks a node that currently sits in no slot.
const notBucketed = -1

// bucketRing is a fixed-size cyclic array of node sets.
//
// A monotonically increasing logical pointer j selects the physical slot
// j mod len(slots). Membership is tracked per node (where/pos), so a node
// is in at most one slot and removal is O(1) via swap-with-last.
type bucketRing struct {
	slots [][]int
	where []int // where[v] = slot holding v, or notBucketed
	pos   []int // pos[v] = index of v inside slots[where[v]]
	count int   // nodes currently bucketed, over all slots
	j     int
}

// newBucketRing allocates size slots for nodes [0, n). size < 1 is raised to 1.
func newBucketRing(size, n int) *bucketRing {
	size = max(1, size)
	r := &bucketRing{
		slots: make([][]int, size),
		where: make([]int, n),
		pos:   make([]int, n),
	}
	for v := range r.where {
		r.where[v] = notBucketed
	}

	return r
}

// size returns the number of physical slots B.
func (r *bucketRing) size() int { return len(r.slots) }

// slot maps a logical bucket index to its physical slot.
func (r *bucketRing) slot(logical int) int { return logical % len(r.slots) }

// pointer returns the logical bucket pointer j.
func (r *bucketRing) pointer() int { return r.j }

// currentIndex returns the physical slot of the current bucket.
func (r *bucketRing) currentIndex() int { return r.slot(r.j) }

// current returns the node set of the current bucket. The slice aliases
// ring storage and is only valid until the next mutation.
func (r *bucketRing) current() []int { return r.slots[r.currentIndex()] }

// advance moves the logical pointer by exactly one bucket.
func (r *bucketRing) advance() { r.j++ }

func (r *bucketRing) isEmpty(idx int) bool { return len(r.slots[idx]) == 0 }

// clear empties slot idx and detaches its nodes.
func (r *bucketRing) clear(idx int) {
	for _, v := range r.slots[idx] {
		r.where[v] = notBucketed
	}
	r.count -= len(r.slots[idx])
	r.slots[idx] = r.slots[idx][:0]
}

// allEmpty reports whether every slot is empty. The running count gives
// the same answer as scanning all B slots, in O(1).
func (r *bucketRing) allEmpty() bool { return r.count == 0 }

// contains reports whether v is in slot idx.
func (r *bucketRing) contains(v, idx int) bool { return r.where[v] == idx }

// bucketOf returns the slot holding v, or notBucketed.
func (r *bucketRing) bucketOf(v int) int { return r.where[v] }

// move removes v from oldIdx when it is there and inserts it into newIdx.
// oldIdx may be notBucketed for a node that was never bucketed.
func (r *bucketRing) move(v, oldIdx, newIdx int) {
	if oldIdx != notBucketed && r.contains(v, oldIdx) {
		r.remove(v)
	}
	if r.where[v] != notBucketed {
		// v sits elsewhere; keep the single-membership invariant.
		r.remove(v)
	}
	r.where[v] = newIdx
	r.pos[v] = len(r.slots[newIdx])
	r.slots[newIdx] = append(r.slots[newIdx], v)
	r.count++
}

// remove detaches v from its slot by swapping in the slot's last node.
func (r *bucketRing) remove(v int) {
	idx := r.where[v]
	s := r.slots[idx]
	i, last := r.pos[v], len(s)-1
	if i != last {
		moved := s[last]
		s[i] = moved
		r.pos[moved] = i
	}
	r.slots[idx] = s[:last]
	r.where[v] = notBucketed
	r.count--
}

// contents returns a sorted copy of every slot; empty slots are non-nil.
func (r *bucketRing) contents() [][]int {
	out := make([][]int, len(r.slots))
	for idx, s := range r.slots {
		out[idx] = make([]int, len(s))
		copy(out[idx], s)
		slices.Sort(out[idx])
	}

	return out
}
