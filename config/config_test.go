package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromReader_Defaults(t *testing.T) {
	cfg, err := LoadFromReader("yaml", []byte(""))
	require.NoError(t, err)

	assert.Equal(t, "-", cfg.Input.Path)
	assert.Equal(t, "edgelist", cfg.Input.Format)
	assert.Equal(t, 0.0, cfg.Run.Delta)
	assert.Equal(t, "pool", cfg.Run.Executor)
	assert.Equal(t, "none", cfg.Run.Verify)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "deltastep", cfg.Telemetry.ServiceName)
}

func TestLoadFromReader_Values(t *testing.T) {
	content := `
input:
  format: dimacs
run:
  source: 3
  delta: 2.5
  workers: 8
  executor: spawn
  verify: gonum
output:
  format: json
  paths: true
telemetry:
  enabled: true
  protocol: http
  endpoint: localhost:4318
  headers:
    authorization: token
`
	cfg, err := LoadFromReader("yaml", []byte(content))
	require.NoError(t, err)

	assert.Equal(t, "dimacs", cfg.Input.Format)
	assert.Equal(t, 3, cfg.Run.Source)
	assert.Equal(t, 2.5, cfg.Run.Delta)
	assert.Equal(t, 8, cfg.Run.Workers)
	assert.Equal(t, "spawn", cfg.Run.Executor)
	assert.Equal(t, "gonum", cfg.Run.Verify)
	assert.True(t, cfg.Output.Paths)
	assert.Equal(t, "localhost:4318", cfg.Telemetry.Endpoint)
	assert.Equal(t, "token", cfg.Telemetry.Headers["authorization"])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"negative delta", "run:\n  delta: -1\n", true},
		{"infinite delta", "run:\n  delta: .inf\n", true},
		{"nan delta", "run:\n  delta: .nan\n", true},
		{"negative workers", "run:\n  workers: -2\n", true},
		{"negative source", "run:\n  source: -1\n", true},
		{"bad executor", "run:\n  executor: threads\n", true},
		{"bad verify", "run:\n  verify: bellman\n", true},
		{"bad input format", "input:\n  format: graphml\n", true},
		{"bad output", "output:\n  format: xml\n", true},
		{"bad log format", "log:\n  format: pretty\n", true},
		{"bad protocol when enabled", "telemetry:\n  enabled: true\n  protocol: udp\n", true},
		{"bad protocol when disabled", "telemetry:\n  protocol: udp\n", false},
		{"uppercase output", "output:\n  format: YAML\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromReader("yaml", []byte(tt.content))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_FileEnvFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deltastep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("run:\n  delta: 4\n  workers: 2\n  source: 1\n"), 0o600))

	t.Setenv("DELTASTEP_RUN_WORKERS", "6")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("source", 0, "")
	fs.Float64("delta", 0, "")
	require.NoError(t, fs.Parse([]string{"--source", "5"}))

	cfg, err := Load(path, map[string]*pflag.Flag{
		"run.source": fs.Lookup("source"),
		"run.delta":  fs.Lookup("delta"),
		"run.verify": nil,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Run.Source, "explicit flag beats file")
	assert.Equal(t, 4.0, cfg.Run.Delta, "unset flag leaves file value")
	assert.Equal(t, 6, cfg.Run.Workers, "env beats file")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "pool", cfg.Run.Executor)
}
