// Package cmd wires the deltastep CLI: run, gen, bench and version.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/deltastep/config"
	"github.com/katalvlaran/deltastep/telemetry"
)

// flagKeys maps config keys to the flag names that override them. Commands
// that do not define a flag simply leave the key to file, env and default.
var flagKeys = map[string]string{
	"log.level":              "log-level",
	"log.format":             "log-format",
	"input.path":             "input",
	"input.format":           "format",
	"run.source":             "source",
	"run.delta":              "delta",
	"run.workers":            "workers",
	"run.executor":           "executor",
	"run.verify":             "verify",
	"run.verbose":            "step",
	"output.format":          "output",
	"output.paths":           "paths",
	"output.labels":          "labels",
	"telemetry.enabled":      "trace",
	"telemetry.endpoint":     "trace-endpoint",
	"telemetry.protocol":     "trace-protocol",
	"telemetry.insecure":     "trace-insecure",
	"telemetry.sampler":      "trace-sampler",
	"telemetry.service_name": "trace-service",
}

// annotationBindConfig marks commands whose local flags override config keys.
const annotationBindConfig = "deltastep/bind-config"

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfgFile  string
	cfg      *config.Config
	log      *zap.Logger
	shutdown telemetry.ShutdownFunc
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop(), shutdown: func(context.Context) error { return nil }}

	root := &cobra.Command{
		Use:   "deltastep",
		Short: "Parallel Δ-stepping single-source shortest paths",
		Long: `deltastep computes single-source shortest paths on directed graphs with
non-negative edge weights using the parallel Δ-stepping algorithm.

Configuration is read from deltastep.yaml (current directory or
$HOME/.config/deltastep, or --config), DELTASTEP_* environment variables
and flags, in increasing precedence.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}

	binName := BinName()
	root.Example = `  # Shortest paths from node 0 of an edge list
  ` + binName + ` run -i graph.txt

  # DIMACS input, explicit bucket width, 8 workers, JSON output
  ` + binName + ` run -i USA-road-d.NY.gr --format dimacs --delta 500 --workers 8 -o json

  # Generate a random graph and check the result against Dijkstra
  ` + binName + ` gen --kind random --n 1000 --p 0.01 --seed 7 | ` + binName + ` run --verify dijkstra

  # Step through every phase of a small run
  ` + binName + ` run -i tiny.txt --step --labels letters`

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./deltastep.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")
	pf.Bool("trace", false, "export OpenTelemetry spans over OTLP")
	pf.String("trace-endpoint", "", "OTLP collector endpoint")
	pf.String("trace-protocol", "grpc", "OTLP protocol: grpc or http")
	pf.Bool("trace-insecure", false, "disable TLS for the OTLP exporter")
	pf.String("trace-sampler", "always_on", "trace sampler (always_on, traceidratio, parentbased_*)")
	pf.String("trace-service", "deltastep", "service.name resource attribute")

	root.AddCommand(newRunCmd(a), newGenCmd(a), newBenchCmd(a), newVersionCmd())

	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}

// setup loads configuration and installs the logger and tracer provider.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	bound := make(map[string]*pflag.Flag, len(flagKeys))
	for key, name := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		// local flags of gen and bench share names with run's but not meaning
		if cmd.Annotations[annotationBindConfig] == "" && cmd.Root().PersistentFlags().Lookup(name) == nil {
			continue
		}
		bound[key] = f
	}
	cfg, err := config.Load(a.cfgFile, bound)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = newLogger(cfg.Log); err != nil {
		return err
	}

	shutdown, err := telemetry.Init(cmd.Context(), cfg.Telemetry)
	if err != nil {
		a.log.Warn("tracing disabled", zap.Error(err))
	} else {
		a.shutdown = shutdown
	}
	a.log.Debug("configuration loaded", zap.Any("config", cfg))

	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if err := a.shutdown(ctx); err != nil {
		a.log.Warn("trace shutdown failed", zap.Error(err))
	}
	_ = a.log.Sync()

	return nil
}

// newLogger builds a stderr zap logger for the given level and encoding.
func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", lc.Level, err)
	}

	zc := zap.NewProductionConfig()
	if lc.Format == "console" {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
