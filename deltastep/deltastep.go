package deltastep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/katalvlaran/deltastep/core"
	"github.com/katalvlaran/deltastep/parallel"
)

// MaxBuckets bounds the ring size B = ceil(maxWeight/Δ). A Δ that is tiny
// relative to the heaviest edge would otherwise allocate and sweep an
// enormous ring; pick a larger Δ (or let SuggestDelta choose).
const MaxBuckets = 1 << 22

// ErrTooManyBuckets indicates that maxWeight/Δ exceeds MaxBuckets.
var ErrTooManyBuckets = errors.New("deltastep: delta too small for the heaviest edge")

// Run computes shortest distances from Options.Source to every node of g
// with the Δ-stepping algorithm.
//
// Returns:
//
//   - res.Dist: length g.Order(); +Inf for unreachable nodes.
//   - res.Pred: predecessors when WithReturnPath() was given, else nil.
//   - res.Stats: work counters for the run.
//   - err: one of the sentinel errors on invalid configuration.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Workers ≥ 1 when no Executor is supplied (ErrBadWorkers).
//  3. Δ must be ≥ 0 and finite; 0 selects SuggestDelta (ErrBadDelta).
//  4. An empty graph returns an empty result, whatever the source.
//  5. Source must lie in [0, N) (ErrSourceOutOfRange).
//  6. ceil(maxWeight/Δ) ≤ MaxBuckets (ErrTooManyBuckets).
//
// Edge weights are assumed non-negative and are not re-checked here.
//
// Complexity: O((V + E) · r) work where r is the number of times a node
// re-enters a bucket; each round's edge scans are split across workers.
func Run(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate configuration
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Executor == nil && cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWorkers, cfg.Workers)
	}
	if math.IsNaN(cfg.Delta) || math.IsInf(cfg.Delta, 0) || cfg.Delta < 0 {
		return nil, fmt.Errorf("%w: got %g", ErrBadDelta, cfg.Delta)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = otel.Tracer(tracerName)
	}
	if cfg.SpanContext == nil {
		cfg.SpanContext = context.Background()
	}

	// 3) Snapshot the graph once; workers read only the snapshot.
	csr := g.Compact()
	n := csr.Order()
	if n == 0 {
		res := &Result{Source: cfg.Source, Dist: []float64{}}
		if cfg.ReturnPath {
			res.Pred = []int{}
		}
		return res, nil
	}
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, cfg.Source, n)
	}

	// 4) Resolve Δ and the ring size.
	delta := cfg.Delta
	if delta == 0 {
		delta = suggestDelta(csr)
	}
	buckets, err := bucketCount(csr.MaxWeight, delta)
	if err != nil {
		return nil, err
	}

	// 5) Executor: caller-owned, or a pool that lives for this run only.
	exec := cfg.Executor
	if exec == nil {
		pool := parallel.NewPool(cfg.Workers)
		defer pool.Close()
		exec = pool
	}

	_, span := cfg.Tracer.Start(cfg.SpanContext, "deltastep.Run")
	defer span.End()
	span.SetAttributes(
		attribute.Int("deltastep.nodes", n),
		attribute.Int("deltastep.edges", csr.Size()),
		attribute.Float64("deltastep.delta", delta),
		attribute.Int("deltastep.buckets", buckets),
		attribute.Int("deltastep.workers", exec.Workers()),
	)

	// 6) Assemble the runner.
	ring := newBucketRing(buckets, n)
	r := &runner{
		opts:    cfg,
		csr:     csr,
		ring:    ring,
		store:   newDistanceStore(n, delta, ring, cfg.ReturnPath),
		gen:     newRequestGenerator(csr, delta, exec),
		visited: make([]bool, n),
		log:     cfg.Logger,
		span:    span,
		stats: Stats{
			Buckets: buckets,
			Workers: exec.Workers(),
			Delta:   delta,
		},
	}

	// 7) Run the phase loop.
	start := time.Now()
	r.init()
	if err = r.process(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("deltastep: request generation failed: %w", err)
	}
	r.stats.Duration = time.Since(start)

	span.SetAttributes(
		attribute.Int("deltastep.outer_iterations", r.stats.OuterIterations),
		attribute.Int("deltastep.relaxations", r.stats.Relaxations),
	)
	r.log.Info("delta-stepping finished",
		zap.Int("nodes", n),
		zap.Int("edges", csr.Size()),
		zap.Float64("delta", delta),
		zap.Int("buckets", buckets),
		zap.Int("workers", r.stats.Workers),
		zap.Int("outer_iterations", r.stats.OuterIterations),
		zap.Int("light_rounds", r.stats.LightRounds),
		zap.Int("heavy_rounds", r.stats.HeavyRounds),
		zap.Int("relaxations", r.stats.Relaxations),
		zap.Duration("duration", r.stats.Duration),
	)

	return &Result{
		Source: cfg.Source,
		Dist:   r.store.dist,
		Pred:   r.store.pred,
		Stats:  r.stats,
	}, nil
}

// SuggestDelta proposes a bucket width for g: maxWeight / maxOutDegree,
// raised to at least the smallest positive weight. Edgeless or all-zero
// graphs get 1.
func SuggestDelta(g *core.Graph) float64 {
	if g == nil {
		return 1
	}

	return suggestDelta(g.Compact())
}

func suggestDelta(c *core.CSR) float64 {
	if c.MaxWeight == 0 {
		return 1
	}
	d := c.MaxWeight / float64(max(1, c.MaxOutDegree))

	return max(d, c.MinPositiveWeight)
}

// bucketCount returns B = max(1, ceil(maxWeight/Δ)).
func bucketCount(maxWeight, delta float64) (int, error) {
	b := math.Ceil(maxWeight / delta)
	if b > MaxBuckets {
		return 0, fmt.Errorf("%w: %g/%g needs %g buckets (max %d)",
			ErrTooManyBuckets, maxWeight, delta, b, MaxBuckets)
	}

	return max(1, int(b)), nil
}
