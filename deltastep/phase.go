package deltastep

import (
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/deltastep/core"
)

// runState is the phase controller's state machine: Running → Terminated.
type runState uint8

const (
	stateRunning runState = iota
	stateTerminated
)

// runner holds the mutable state for a single Δ-stepping execution.
type runner struct {
	opts  Options
	csr   *core.CSR
	ring  *bucketRing
	store *distanceStore
	gen   *requestGenerator

	frontier    []int  // snapshot of the current bucket, reused
	visited     []bool // nodes that passed through the current bucket
	visitedList []int  // same set, in insertion order

	state runState
	stats Stats
	log   *zap.Logger
	span  trace.Span
}

// init seeds the source at distance 0 into the bucket of distance 0.
func (r *runner) init() {
	r.store.tryRelax(r.opts.Source, 0, NoPredecessor)
	r.stats.Relaxations = 1
	r.notify(PhaseInit)
}

// process drives outer iterations until the ring is empty.
func (r *runner) process() error {
	for r.state == stateRunning {
		if err := r.step(); err != nil {
			return err
		}
	}
	r.notify(PhaseDone)

	return nil
}

// step performs one outer iteration.
//
// Steps:
//  1. Every slot empty ⇒ Terminated.
//  2. Light loop on the current slot until it stays empty.
//  3. One heavy round over everything the light loop visited.
//  4. Advance the logical pointer by exactly one.
//
// An iteration over an empty slot degenerates into two no-op phases; the
// check in (1) is what halts the run.
func (r *runner) step() error {
	// 1) Termination
	if r.ring.allEmpty() {
		r.state = stateTerminated
		return nil
	}

	// 2) Light loop
	rounds, err := r.lightPhase()
	if err != nil {
		return err
	}

	// 3) Heavy round
	visited := len(r.visitedList)
	if err = r.heavyPhase(); err != nil {
		return err
	}
	if visited > 0 {
		r.report(rounds, visited)
	}

	// 4) Advance
	r.ring.advance()
	r.stats.OuterIterations++

	return nil
}

// lightPhase repeatedly snapshots the current slot, generates light
// requests from the snapshot, marks it visited, clears the slot and relaxes.
// Relaxation may refill the same slot, which triggers another round.
func (r *runner) lightPhase() (int, error) {
	idx := r.ring.currentIndex()
	rounds := 0
	for !r.ring.isEmpty(idx) {
		r.frontier = append(r.frontier[:0], r.ring.current()...)

		reqs, scanned, err := r.gen.generate(r.frontier, lightEdges, r.store.dist)
		if err != nil {
			return rounds, err
		}
		r.markVisited(r.frontier)
		r.ring.clear(idx)
		r.relaxAll(reqs)

		rounds++
		r.stats.LightRounds++
		r.stats.LightRequests += scanned
		r.notify(PhaseLight)
	}

	return rounds, nil
}

// heavyPhase relaxes the heavy edges of every visited node once, using the
// distances as they stand after the light loop, then resets the visited set.
func (r *runner) heavyPhase() error {
	if len(r.visitedList) == 0 {
		return nil
	}

	reqs, scanned, err := r.gen.generate(r.visitedList, heavyEdges, r.store.dist)
	if err != nil {
		return err
	}
	r.relaxAll(reqs)
	r.resetVisited()

	r.stats.HeavyRounds++
	r.stats.HeavyRequests += scanned
	r.notify(PhaseHeavy)

	return nil
}

func (r *runner) markVisited(nodes []int) {
	for _, v := range nodes {
		if !r.visited[v] {
			r.visited[v] = true
			r.visitedList = append(r.visitedList, v)
		}
	}
}

func (r *runner) resetVisited() {
	for _, v := range r.visitedList {
		r.visited[v] = false
	}
	r.visitedList = r.visitedList[:0]
}

// report logs and traces one processed (non-empty) bucket.
func (r *runner) report(rounds, visited int) {
	if ce := r.log.Check(zap.DebugLevel, "bucket processed"); ce != nil {
		ce.Write(
			zap.Int("pointer", r.ring.pointer()),
			zap.Int("slot", r.ring.currentIndex()),
			zap.Int("light_rounds", rounds),
			zap.Int("visited", visited),
		)
	}
	if r.span.IsRecording() {
		r.span.AddEvent("bucket", trace.WithAttributes(
			attribute.Int("pointer", r.ring.pointer()),
			attribute.Int("light_rounds", rounds),
			attribute.Int("visited", visited),
		))
	}
}

// notify hands a Snapshot to the hook, if any.
func (r *runner) notify(kind PhaseKind) {
	if r.opts.Hook == nil {
		return
	}
	r.opts.Hook(Snapshot{
		Kind:    kind,
		Pointer: r.ring.pointer(),
		Slot:    r.ring.currentIndex(),
		Delta:   r.store.delta,
		Dist:    slices.Clone(r.store.dist),
		Buckets: r.ring.contents(),
	})
}
