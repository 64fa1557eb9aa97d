package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/deltastep/builder"
	"github.com/katalvlaran/deltastep/core"
	"github.com/katalvlaran/deltastep/edgelist"
)

// genOptions collects the gen and bench graph-shape flags.
type genOptions struct {
	kind          string
	n             int
	p             float64
	rows, cols    int
	seed          uint64
	weights       string
	minW, maxW    float64
	mean, stddev  float64
	rate          float64
	bidirectional bool
}

func (o *genOptions) register(c *cobra.Command) {
	f := c.Flags()
	f.StringVar(&o.kind, "kind", "random", "graph shape: random, grid, path, cycle, star or complete")
	f.IntVarP(&o.n, "nodes", "n", 100, "node count (random, path, cycle, star, complete)")
	f.Float64VarP(&o.p, "p", "p", 0.05, "edge probability for random graphs")
	f.IntVar(&o.rows, "rows", 10, "grid rows")
	f.IntVar(&o.cols, "cols", 10, "grid columns")
	f.Uint64Var(&o.seed, "seed", 1, "random seed")
	f.StringVar(&o.weights, "weights", "uniform", "weight distribution: uniform, normal, exponential or constant")
	f.Float64Var(&o.minW, "min-w", 0, "uniform lower bound")
	f.Float64Var(&o.maxW, "max-w", 10, "uniform upper bound (also the constant weight)")
	f.Float64Var(&o.mean, "mean", 5, "normal mean")
	f.Float64Var(&o.stddev, "stddev", 2, "normal standard deviation")
	f.Float64Var(&o.rate, "rate", 0.5, "exponential rate")
	f.BoolVar(&o.bidirectional, "bidirectional", false, "mirror path, cycle and random edges")
}

// weightOption maps the --weights flags onto a builder option.
func (o *genOptions) weightOption() (opt builder.BuilderOption, err error) {
	// the weight constructors panic on out-of-domain parameters
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid weight parameters: %v", r)
		}
	}()

	switch o.weights {
	case "uniform":
		return builder.WithUniformWeight(o.minW, o.maxW), nil
	case "normal":
		return builder.WithNormalWeight(o.mean, o.stddev), nil
	case "exponential":
		return builder.WithExponentialWeight(o.rate), nil
	case "constant":
		return builder.WithConstantWeight(o.maxW), nil
	default:
		return nil, fmt.Errorf("unknown weight distribution %q", o.weights)
	}
}

func (o *genOptions) constructor() (builder.Constructor, error) {
	switch o.kind {
	case "random":
		return builder.RandomSparse(o.n, o.p), nil
	case "grid":
		return builder.Grid(o.rows, o.cols), nil
	case "path":
		return builder.Path(o.n), nil
	case "cycle":
		return builder.Cycle(o.n), nil
	case "star":
		return builder.Star(o.n), nil
	case "complete":
		return builder.Complete(o.n), nil
	default:
		return nil, fmt.Errorf("unknown graph kind %q", o.kind)
	}
}

// build generates the configured graph.
func (o *genOptions) build() (*core.Graph, error) {
	cons, err := o.constructor()
	if err != nil {
		return nil, err
	}
	wopt, err := o.weightOption()
	if err != nil {
		return nil, err
	}
	bopts := []builder.BuilderOption{builder.WithSeed(o.seed), wopt}
	if o.bidirectional {
		bopts = append(bopts, builder.WithBidirectional())
	}

	return builder.BuildGraph(nil, bopts, cons)
}

func newGenCmd(a *app) *cobra.Command {
	var (
		o       genOptions
		outPath string
		format  string
	)
	c := &cobra.Command{
		Use:   "gen",
		Short: "Generate a weighted test graph",
		Long: `Generate a directed graph with random edge weights and write it as an
edge list or DIMACS file. The same --seed always yields the same graph.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := edgelist.ParseFormat(format)
			if err != nil {
				return err
			}
			g, err := o.build()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" && outPath != "-" {
				file, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer file.Close()
				w = file
			}
			if err = edgelist.Write(w, g, f); err != nil {
				return err
			}
			a.log.Info("graph generated",
				zap.String("kind", o.kind),
				zap.Int("nodes", g.Order()),
				zap.Int("edges", g.Size()),
				zap.Uint64("seed", o.seed))

			return nil
		},
	}
	o.register(c)
	c.Flags().StringVar(&outPath, "out", "-", "output file, - for stdout")
	c.Flags().StringVar(&format, "format", "edgelist", "output format: edgelist or dimacs")

	return c
}
