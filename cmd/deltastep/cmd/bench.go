package cmd

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/deltastep/bfs"
	"github.com/katalvlaran/deltastep/config"
	"github.com/katalvlaran/deltastep/core"
	"github.com/katalvlaran/deltastep/deltastep"
	"github.com/katalvlaran/deltastep/dijkstra"
	"github.com/katalvlaran/deltastep/parallel"
)

// latency summarises repeated wall times in milliseconds.
type latency struct {
	Mean, Median, P95, Stddev float64
}

func summarize(samples []time.Duration) (latency, error) {
	data := make([]float64, len(samples))
	for i, d := range samples {
		data[i] = float64(d.Microseconds()) / 1000.0
	}

	var (
		l   latency
		err error
	)
	if l.Mean, err = stats.Mean(data); err != nil {
		return l, fmt.Errorf("mean: %w", err)
	}
	if l.Median, err = stats.Percentile(data, 50); err != nil {
		return l, fmt.Errorf("percentile 50: %w", err)
	}
	if l.P95, err = stats.Percentile(data, 95); err != nil {
		return l, fmt.Errorf("percentile 95: %w", err)
	}
	if l.Stddev, err = stats.StandardDeviation(data); err != nil {
		return l, fmt.Errorf("stddev: %w", err)
	}

	return l, nil
}

// benchRow is one line of the bench table.
type benchRow struct {
	name        string
	lat         latency
	relaxations int
	edges       int
}

func newBenchCmd(a *app) *cobra.Command {
	var (
		o        genOptions
		input    string
		format   string
		runs     int
		workers  []int
		delta    float64
		executor string
		source   int
	)
	c := &cobra.Command{
		Use:   "bench",
		Short: "Measure delta-stepping across worker counts",
		Long: `Run delta-stepping repeatedly for each --workers value and report mean,
median, p95 and standard deviation of the wall time, next to a sequential
Dijkstra baseline on the same graph. The graph is generated from the gen
flags unless --input names a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if runs < 1 {
				return fmt.Errorf("--runs must be at least 1, got %d", runs)
			}
			if !(delta >= 0) || math.IsInf(delta, 1) {
				return fmt.Errorf("%w: --delta must be a non-negative finite number, got %g", config.ErrInvalid, delta)
			}

			var (
				g   *core.Graph
				err error
			)
			if input != "" {
				g, err = readGraph(config.InputConfig{Path: input, Format: format, MultiEdges: true, Loops: true}, cmd.InOrStdin())
			} else {
				g, err = o.build()
			}
			if err != nil {
				return err
			}
			reach, err := bfs.ReachableCount(g, source)
			if err != nil {
				return err
			}
			a.log.Info("benchmark graph ready",
				zap.Int("nodes", g.Order()),
				zap.Int("edges", g.Size()),
				zap.Int("reachable", reach))
			if reach*10 < g.Order() {
				a.log.Warn("source reaches under 10% of the graph; timings mostly measure setup",
					zap.Int("reachable", reach))
			}

			rows, err := benchmark(g, source, delta, executor, workers, runs)
			if err != nil {
				return err
			}

			return printBench(cmd.OutOrStdout(), g, reach, rows)
		},
	}
	o.register(c)
	f := c.Flags()
	f.StringVarP(&input, "input", "i", "", "graph file instead of a generated graph (- for stdin)")
	f.StringVar(&format, "format", "edgelist", "input format: edgelist or dimacs")
	f.IntVar(&runs, "runs", 5, "repetitions per configuration")
	f.IntSliceVar(&workers, "workers", []int{1, 2, 4, parallel.DefaultWorkers()}, "worker counts to compare")
	f.Float64Var(&delta, "delta", 0, "bucket width Δ (0 = derive from graph)")
	f.StringVar(&executor, "executor", "pool", "worker strategy: pool or spawn")
	f.IntVar(&source, "source", 0, "source node id")

	return c
}

// benchmark times the Dijkstra baseline and every worker count.
func benchmark(g *core.Graph, source int, delta float64, executor string, workers []int, runs int) ([]benchRow, error) {
	rows := make([]benchRow, 0, len(workers)+1)

	samples := make([]time.Duration, runs)
	for i := range samples {
		start := time.Now()
		if _, _, err := dijkstra.Dijkstra(g, dijkstra.Source(source)); err != nil {
			return nil, err
		}
		samples[i] = time.Since(start)
	}
	lat, err := summarize(samples)
	if err != nil {
		return nil, err
	}
	rows = append(rows, benchRow{name: "dijkstra", lat: lat, edges: g.Size()})

	for _, w := range workers {
		if w < 1 {
			return nil, fmt.Errorf("worker count must be at least 1, got %d", w)
		}
		var relax int
		for i := range samples {
			// a fresh executor per sample keeps pool start-up inside the timing
			start := time.Now()
			exec, release := newExecutor(executor, w)
			opts := []deltastep.Option{deltastep.Source(source), deltastep.WithExecutor(exec)}
			if delta > 0 {
				opts = append(opts, deltastep.WithDelta(delta))
			}
			res, err := deltastep.Run(g, opts...)
			samples[i] = time.Since(start)
			release()
			if err != nil {
				return nil, err
			}
			relax = res.Stats.Relaxations
		}
		if lat, err = summarize(samples); err != nil {
			return nil, err
		}
		rows = append(rows, benchRow{name: executor + "/" + strconv.Itoa(w), lat: lat, relaxations: relax, edges: g.Size()})
	}

	return rows, nil
}

func printBench(w io.Writer, g *core.Graph, reach int, rows []benchRow) error {
	fmt.Fprintf(w, "graph: %s nodes, %s edges, %s reachable from the source\n\n",
		humanize.Comma(int64(g.Order())), humanize.Comma(int64(g.Size())), humanize.Comma(int64(reach)))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "config\tmean ms\tp50 ms\tp95 ms\tstddev\tedges/s\trelaxations\tspeedup\t")
	base := rows[0].lat.Mean
	for _, r := range rows {
		rate := "-"
		if r.lat.Mean > 0 {
			rate = humanize.SIWithDigits(float64(r.edges)/(r.lat.Mean/1000), 1, "E/s")
		}
		relax := "-"
		if r.relaxations > 0 {
			relax = humanize.Comma(int64(r.relaxations))
		}
		speedup := "-"
		if r.lat.Mean > 0 {
			speedup = strconv.FormatFloat(base/r.lat.Mean, 'f', 2, 64) + "x"
		}
		fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.3f\t%.3f\t%s\t%s\t%s\t\n",
			r.name, r.lat.Mean, r.lat.Median, r.lat.P95, r.lat.Stddev, rate, relax, speedup)
	}

	return tw.Flush()
}
