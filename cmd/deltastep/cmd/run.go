package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/katalvlaran/deltastep/builder"
	"github.com/katalvlaran/deltastep/config"
	"github.com/katalvlaran/deltastep/converters"
	"github.com/katalvlaran/deltastep/core"
	"github.com/katalvlaran/deltastep/deltastep"
	"github.com/katalvlaran/deltastep/dijkstra"
	"github.com/katalvlaran/deltastep/edgelist"
	"github.com/katalvlaran/deltastep/parallel"
	"github.com/katalvlaran/deltastep/stepper"
)

// ErrVerifyMismatch is returned when --verify finds a differing distance.
var ErrVerifyMismatch = errors.New("verification failed")

// verifyTolerance is the relative slack allowed between float sums that
// were accumulated in different orders.
const verifyTolerance = 1e-9

func newRunCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "run [graph-file]",
		Short: "Compute shortest paths from one source",
		Long: `Read a graph (edge list or DIMACS), run parallel Δ-stepping from --source
and print the distance of every node.

--delta 0 (the default) derives the bucket width from the graph. --verify
re-computes distances with a sequential Dijkstra or with gonum and fails
on any difference. --step pauses after each phase and prints the bucket
ring (Enter continues).`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationBindConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.cfg.Input.Path = args[0]
			}

			return a.runSSSP(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := c.Flags()
	f.StringP("input", "i", "-", "graph file, - for stdin")
	f.String("format", "edgelist", "input format: edgelist or dimacs")
	f.IntP("source", "s", 0, "source node id")
	f.Float64P("delta", "d", 0, "bucket width Δ (0 = derive from graph)")
	f.IntP("workers", "w", 0, "worker goroutines (0 = GOMAXPROCS)")
	f.String("executor", "pool", "worker strategy: pool (persistent) or spawn (per round)")
	f.String("verify", "none", "cross-check: none, dijkstra or gonum")
	f.Bool("step", false, "pause after every phase and print the bucket ring")
	f.StringP("output", "o", "text", "result encoding: text, json or yaml")
	f.Bool("paths", false, "include the full shortest path of each node")
	f.String("labels", "decimal", "node labels: decimal, letters, hex or alnum")

	return c
}

// runSSSP executes one configured run and writes the report to out. Phase
// traces from --step go to trace so that encoded output stays parseable.
func (a *app) runSSSP(ctx context.Context, in io.Reader, out, trace io.Writer) error {
	cfg := a.cfg

	ctx, span := otel.Tracer("github.com/katalvlaran/deltastep/cmd").Start(ctx, "deltastep.cli.run")
	defer span.End()

	g, err := readGraph(cfg.Input, in)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String("input.path", cfg.Input.Path))
	a.log.Info("graph loaded",
		zap.String("path", cfg.Input.Path),
		zap.Int("nodes", g.Order()),
		zap.Int("edges", g.Size()))

	labels, err := builder.LabelScheme(cfg.Output.Labels)
	if err != nil {
		return err
	}
	outFmt, err := edgelist.ParseOutput(cfg.Output.Format)
	if err != nil {
		return err
	}

	workers := cfg.Run.Workers
	if workers <= 0 {
		workers = parallel.DefaultWorkers()
	}
	exec, closeExec := newExecutor(cfg.Run.Executor, workers)
	defer closeExec()

	opts := []deltastep.Option{
		deltastep.Source(cfg.Run.Source),
		deltastep.WithExecutor(exec),
		deltastep.WithReturnPath(),
		deltastep.WithLogger(a.log),
		deltastep.WithSpanContext(ctx),
	}
	if cfg.Run.Delta > 0 {
		opts = append(opts, deltastep.WithDelta(cfg.Run.Delta))
	}
	if cfg.Run.Verbose {
		// the graph already consumed stdin when it was read from there
		var pace io.Reader = in
		if isStdin(cfg.Input.Path) {
			pace = nil
		}
		opts = append(opts, deltastep.WithHook(stepper.New(trace, pace, labels).Hook()))
	}

	res, err := deltastep.Run(g, opts...)
	if err != nil {
		return err
	}

	if err = verify(cfg.Run.Verify, g, res); err != nil {
		return err
	}
	if cfg.Run.Verify != "none" {
		a.log.Info("distances verified", zap.String("against", cfg.Run.Verify))
	}

	return edgelist.EncodeResult(out, edgelist.NewReport(res, labels, cfg.Output.Paths), outFmt)
}

// readGraph opens the configured input ("-" is stdin) and parses it.
func readGraph(ic config.InputConfig, stdin io.Reader) (*core.Graph, error) {
	format, err := edgelist.ParseFormat(ic.Format)
	if err != nil {
		return nil, err
	}

	r := stdin
	if !isStdin(ic.Path) {
		f, err := os.Open(ic.Path)
		if err != nil {
			return nil, fmt.Errorf("open graph: %w", err)
		}
		defer f.Close()
		r = f
	}

	var gopts []core.GraphOption
	if ic.MultiEdges {
		gopts = append(gopts, core.WithMultiEdges())
	}
	if ic.Loops {
		gopts = append(gopts, core.WithLoops())
	}

	return edgelist.Read(r, format, gopts...)
}

// newExecutor returns a Spawner for "spawn" and a Pool otherwise, plus the
// func that releases it.
func newExecutor(kind string, workers int) (parallel.Executor, func()) {
	if kind == "spawn" {
		return parallel.NewSpawner(workers), func() {}
	}
	pool := parallel.NewPool(workers)

	return pool, pool.Close
}

// verify recomputes distances with the named reference and compares.
func verify(method string, g *core.Graph, res *deltastep.Result) error {
	var (
		want []float64
		err  error
	)
	switch method {
	case "", "none":
		return nil
	case "dijkstra":
		want, _, err = dijkstra.Dijkstra(g, dijkstra.Source(res.Source))
	case "gonum":
		want, err = converters.GonumDistances(g, res.Source)
	default:
		return fmt.Errorf("unknown verify method %q", method)
	}
	if err != nil {
		return fmt.Errorf("verify with %s: %w", method, err)
	}

	for v, got := range res.Dist {
		if !sameDistance(got, want[v]) {
			return fmt.Errorf("%w: node %d: delta-stepping %s, %s %s", ErrVerifyMismatch,
				v, edgelist.FormatDistance(got), method, edgelist.FormatDistance(want[v]))
		}
	}

	return nil
}

func sameDistance(a, b float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return a == b
	}

	return math.Abs(a-b) <= verifyTolerance*math.Max(1, math.Abs(b))
}

func isStdin(path string) bool { return path == "" || path == "-" }
