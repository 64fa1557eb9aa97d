// Package config loads deltastep CLI settings from a YAML file, DELTASTEP_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (DELTASTEP_RUN_DELTA).
const EnvPrefix = "DELTASTEP"

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all configuration for the CLI.
type Config struct {
	Input     InputConfig     `mapstructure:"input"`
	Run       RunConfig       `mapstructure:"run"`
	Output    OutputConfig    `mapstructure:"output"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// InputConfig describes how the graph file is parsed.
type InputConfig struct {
	Path       string `mapstructure:"path"`   // "-" or empty reads stdin
	Format     string `mapstructure:"format"` // edgelist or dimacs
	MultiEdges bool   `mapstructure:"multi_edges"`
	Loops      bool   `mapstructure:"loops"`
}

// RunConfig holds the engine parameters.
type RunConfig struct {
	Source   int     `mapstructure:"source"`
	Delta    float64 `mapstructure:"delta"`    // 0 picks one from the graph
	Workers  int     `mapstructure:"workers"`  // 0 means GOMAXPROCS
	Executor string  `mapstructure:"executor"` // pool or spawn
	Verify   string  `mapstructure:"verify"`   // none, dijkstra or gonum
	Verbose  bool    `mapstructure:"verbose"`  // step through phases
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Format string `mapstructure:"format"` // text, json or yaml
	Paths  bool   `mapstructure:"paths"`
	Labels string `mapstructure:"labels"` // decimal, letters, hex or alnum
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// TelemetryConfig configures OTLP trace export.
type TelemetryConfig struct {
	Enabled        bool              `mapstructure:"enabled"`
	ServiceName    string            `mapstructure:"service_name"`
	ServiceVersion string            `mapstructure:"service_version"`
	Endpoint       string            `mapstructure:"endpoint"`
	Protocol       string            `mapstructure:"protocol"` // grpc or http
	Insecure       bool              `mapstructure:"insecure"`
	Headers        map[string]string `mapstructure:"headers"`
	Sampler        string            `mapstructure:"sampler"`
	SamplerArg     string            `mapstructure:"sampler_arg"`
}

// Load reads configuration from configPath (optional), the environment and
// flags. flags maps config keys ("run.delta") to the flag that overrides them;
// a flag only wins when it was set explicitly.
func Load(configPath string, flags map[string]*pflag.Flag) (*Config, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("deltastep")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/deltastep")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	for key, f := range flags {
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("failed to bind flag %q: %w", f.Name, err)
		}
	}

	return decode(v)
}

// LoadFromReader loads configuration from raw content (useful for testing).
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := newViper()
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.path", "-")
	v.SetDefault("input.format", "edgelist")
	v.SetDefault("input.multi_edges", true)
	v.SetDefault("input.loops", true)

	v.SetDefault("run.source", 0)
	v.SetDefault("run.delta", 0.0)
	v.SetDefault("run.workers", 0)
	v.SetDefault("run.executor", "pool")
	v.SetDefault("run.verify", "none")
	v.SetDefault("run.verbose", false)

	v.SetDefault("output.format", "text")
	v.SetDefault("output.paths", false)
	v.SetDefault("output.labels", "decimal")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "deltastep")
	v.SetDefault("telemetry.service_version", "dev")
	v.SetDefault("telemetry.protocol", "grpc")
	v.SetDefault("telemetry.sampler", "always_on")
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Run.Source < 0 {
		return fmt.Errorf("%w: run.source must be non-negative, got %d", ErrInvalid, c.Run.Source)
	}
	if !(c.Run.Delta >= 0) || math.IsInf(c.Run.Delta, 1) {
		return fmt.Errorf("%w: run.delta must be a non-negative finite number, got %g", ErrInvalid, c.Run.Delta)
	}
	if c.Run.Workers < 0 {
		return fmt.Errorf("%w: run.workers must be non-negative, got %d", ErrInvalid, c.Run.Workers)
	}
	if err := oneOf("run.executor", c.Run.Executor, "pool", "spawn"); err != nil {
		return err
	}
	if err := oneOf("run.verify", c.Run.Verify, "none", "dijkstra", "gonum"); err != nil {
		return err
	}
	if err := oneOf("input.format", strings.ToLower(c.Input.Format), "edgelist", "el", "txt", "dimacs", "gr"); err != nil {
		return err
	}
	if err := oneOf("output.format", strings.ToLower(c.Output.Format), "text", "txt", "json", "yaml", "yml"); err != nil {
		return err
	}
	if err := oneOf("log.format", c.Log.Format, "json", "console"); err != nil {
		return err
	}
	if c.Telemetry.Enabled {
		if err := oneOf("telemetry.protocol", strings.ToLower(c.Telemetry.Protocol), "grpc", "http", "http/protobuf"); err != nil {
			return err
		}
	}

	return nil
}

func oneOf(key, got string, allowed ...string) error {
	for _, a := range allowed {
		if got == a {
			return nil
		}
	}

	return fmt.Errorf("%w: %s must be one of %s, got %q", ErrInvalid, key, strings.Join(allowed, "|"), got)
}
