package deltastep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/deltastep/core"
	"github.com/katalvlaran/deltastep/parallel"
)

// Sentinel errors returned by Run and Result helpers.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Run.
	ErrNilGraph = errors.New("deltastep: graph is nil")

	// ErrBadDelta indicates a negative, NaN or infinite bucket width.
	ErrBadDelta = errors.New("deltastep: delta must be a positive finite number")

	// ErrSourceOutOfRange indicates that the source id is not in [0, N).
	ErrSourceOutOfRange = errors.New("deltastep: source node out of range")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("deltastep: workers must be at least 1")

	// ErrUnreachable indicates that no path exists to the requested node.
	ErrUnreachable = errors.New("deltastep: node is unreachable")

	// ErrNoPredecessors indicates PathTo on a result computed without WithReturnPath.
	ErrNoPredecessors = errors.New("deltastep: predecessors were not recorded")
)

// tracerName identifies spans emitted by this package.
const tracerName = "github.com/katalvlaran/deltastep"

// NoPredecessor marks the source and unreachable nodes in Result.Pred.
const NoPredecessor = -1

// Options configures a Δ-stepping run.
//
// Source      – starting node id. Default 0.
// Delta       – bucket width. 0 selects SuggestDelta.
// Workers     – request-generation workers. Default parallel.DefaultWorkers().
// Executor    – fork/join executor; overrides Workers with Executor.Workers().
// ReturnPath  – record predecessors in Result.Pred.
// Hook        – observer called between phases (see Snapshot).
// Logger      – structured logger; default zap.NewNop().
// Tracer      – span source; default the global otel tracer.
// SpanContext – parent context for the run span. It never cancels the run.
type Options struct {
	Source      int
	Delta       float64
	Workers     int
	Executor    parallel.Executor
	ReturnPath  bool
	Hook        Hook
	Logger      *zap.Logger
	Tracer      trace.Tracer
	SpanContext context.Context
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// Source sets the starting node id.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithDelta sets the bucket width Δ.
// Panics if delta is not a positive finite number.
func WithDelta(delta float64) Option {
	if !(delta > 0) || math.IsInf(delta, 1) {
		panic(fmt.Sprintf("%s: got %g", ErrBadDelta.Error(), delta))
	}

	return func(o *Options) {
		o.Delta = delta
	}
}

// WithWorkers sets the number of request-generation workers.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("%s: got %d", ErrBadWorkers.Error(), n))
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// WithExecutor runs request generation on ex. The caller keeps ownership:
// Run never closes it.
func WithExecutor(ex parallel.Executor) Option {
	return func(o *Options) {
		o.Executor = ex
	}
}

// WithReturnPath enables predecessor tracking.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithHook registers an observer invoked between phases.
func WithHook(h Hook) Option {
	return func(o *Options) {
		o.Hook = h
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithTracer sets the tracer used for the run span.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		o.Tracer = t
	}
}

// WithSpanContext sets the parent context of the run span.
func WithSpanContext(ctx context.Context) Option {
	return func(o *Options) {
		o.SpanContext = ctx
	}
}

// DefaultOptions returns the defaults described on Options.
func DefaultOptions() Options {
	return Options{
		Source:      0,
		Delta:       0,
		Workers:     parallel.DefaultWorkers(),
		Logger:      zap.NewNop(),
		Tracer:      otel.Tracer(tracerName),
		SpanContext: context.Background(),
	}
}

// PhaseKind labels the point in the run at which a Hook fires.
type PhaseKind uint8

const (
	// PhaseInit fires once after the source has been seeded.
	PhaseInit PhaseKind = iota
	// PhaseLight fires after each light relaxation round.
	PhaseLight
	// PhaseHeavy fires after the heavy relaxation round of a bucket.
	PhaseHeavy
	// PhaseDone fires once when every bucket is empty.
	PhaseDone
)

// String returns a short label for the phase.
func (k PhaseKind) String() string {
	switch k {
	case PhaseInit:
		return "init"
	case PhaseLight:
		return "light"
	case PhaseHeavy:
		return "heavy"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of the algorithm state handed to a Hook.
// Buckets[k] lists the nodes of physical slot k in ascending order.
type Snapshot struct {
	Kind    PhaseKind
	Pointer int // logical bucket pointer j
	Slot    int // physical slot j mod len(Buckets)
	Delta   float64
	Dist    []float64
	Buckets [][]int
}

// Hook observes a run between phases. It runs on the Run goroutine and may
// block; the run resumes when it returns.
type Hook func(s Snapshot)

// Stats summarises the work done by one run.
type Stats struct {
	Buckets         int           // ring size B
	Workers         int           // executor worker count
	Delta           float64       // effective Δ
	OuterIterations int           // bucket pointer advances
	LightRounds     int           // light generation/relax rounds
	HeavyRounds     int           // heavy generation/relax rounds (non-empty visited set)
	LightRequests   int           // light edges scanned
	HeavyRequests   int           // heavy edges scanned
	Relaxations     int           // successful tryRelax calls, source seed included
	Duration        time.Duration // wall time of the phase loop
}

// Result holds the output of Run.
//
// Dist[v] is the shortest distance from Source to v, or +Inf.
// Pred[v] is v's predecessor on one shortest path, or NoPredecessor;
// Pred is nil unless WithReturnPath was given.
type Result struct {
	Source int
	Dist   []float64
	Pred   []int
	Stats  Stats
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && !math.IsInf(r.Dist[v], 1)
}

// PathTo returns the node sequence Source→…→v.
func (r *Result) PathTo(v int) ([]int, error) {
	if v < 0 || v >= len(r.Dist) {
		return nil, fmt.Errorf("%w: %d", core.ErrNodeOutOfRange, v)
	}
	if r.Pred == nil {
		return nil, ErrNoPredecessors
	}
	if !r.Reachable(v) {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, v)
	}

	var path []int
	for u := v; u != NoPredecessor; u = r.Pred[u] {
		// only a negative weight can close a predecessor cycle
		if len(path) == len(r.Dist) {
			return nil, fmt.Errorf("%w: predecessor cycle through %d", ErrUnreachable, v)
		}
		path = append(path, u)
	}
	slices.Reverse(path)

	return path, nil
}
