package cmd

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deltastep/config"
	"github.com/katalvlaran/deltastep/core"
	"github.com/katalvlaran/deltastep/deltastep"
)

const chainGraph = `# 0→1→2→3 with a shortcut, node 4 isolated
n 5
0 1 1
1 2 1
0 2 5
2 3 1
`

// execute runs the CLI with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestRun_JSONFromStdin(t *testing.T) {
	out, _, err := execute(t, chainGraph, "run", "-o", "json", "--delta", "1", "--workers", "2", "--paths", "--verify", "dijkstra")
	require.NoError(t, err)

	var rep struct {
		Source int     `json:"source"`
		Delta  float64 `json:"delta"`
		Nodes  []struct {
			ID       int      `json:"id"`
			Distance *float64 `json:"distance"`
			Path     []int    `json:"path"`
		} `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 1.0, rep.Delta)
	require.Len(t, rep.Nodes, 5)
	assert.Equal(t, 3.0, *rep.Nodes[3].Distance)
	assert.Equal(t, []int{0, 1, 2, 3}, rep.Nodes[3].Path)
	assert.Nil(t, rep.Nodes[4].Distance)
}

func TestRun_FileArgumentGonumVerify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.txt")
	require.NoError(t, os.WriteFile(path, []byte(chainGraph), 0o600))

	out, _, err := execute(t, "", "run", path, "--verify", "gonum", "--executor", "spawn", "--labels", "letters")
	require.NoError(t, err)
	assert.Contains(t, out, "source")
	assert.Contains(t, out, "inf")
	assert.Contains(t, out, "D ") // node 3 labelled with letters
}

func TestRun_DIMACSWithSource(t *testing.T) {
	in := "p sp 3 2\na 1 2 4\na 2 3 1\n"
	out, _, err := execute(t, in, "run", "--format", "dimacs", "--source", "1", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "source: 1")
	assert.Contains(t, out, ".inf")
}

func TestRun_Step(t *testing.T) {
	_, errOut, err := execute(t, chainGraph, "run", "--step", "--delta", "1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "== step 1: init")
	assert.NotContains(t, errOut, "press Enter", "stdin held the graph, so no pauses")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, chainGraph, "run", "--source", "9")
	assert.ErrorIs(t, err, deltastep.ErrSourceOutOfRange)

	_, _, err = execute(t, chainGraph, "run", "--executor", "threads")
	assert.ErrorIs(t, err, config.ErrInvalid)

	for _, delta := range []string{"inf", "-1", "NaN"} {
		assert.NotPanics(t, func() {
			_, _, err = execute(t, chainGraph, "run", "--delta", delta)
		}, "delta %s", delta)
		assert.ErrorIs(t, err, config.ErrInvalid, "delta %s", delta)
	}

	_, _, err = execute(t, "0 1 x\n", "run")
	assert.Error(t, err)

	_, _, err = execute(t, "", "run", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestGen_DeterministicAndRunnable(t *testing.T) {
	args := []string{"gen", "--kind", "random", "-n", "60", "-p", "0.1", "--seed", "42", "--weights", "exponential"}
	first, _, err := execute(t, "", args...)
	require.NoError(t, err)
	second, _, err := execute(t, "", args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "n 60")

	_, _, err = execute(t, first, "run", "--verify", "dijkstra", "--workers", "3")
	require.NoError(t, err)
}

func TestGen_KindsAndFormats(t *testing.T) {
	out, _, err := execute(t, "", "gen", "--kind", "grid", "--rows", "2", "--cols", "3", "--format", "dimacs", "--weights", "constant", "--max-w", "2")
	require.NoError(t, err)
	// 2x3 grid: 7 undirected edges, both directions
	assert.Contains(t, out, "p sp 6 14")

	_, _, err = execute(t, "", "gen", "--kind", "torus")
	assert.Error(t, err)
	_, _, err = execute(t, "", "gen", "--weights", "uniform", "--min-w", "5", "--max-w", "1")
	assert.Error(t, err)
}

func TestBench(t *testing.T) {
	out, _, err := execute(t, "", "bench", "--kind", "grid", "--rows", "4", "--cols", "4", "--runs", "2", "--workers", "1,2")
	require.NoError(t, err)
	assert.Contains(t, out, "16 nodes")
	assert.Contains(t, out, "dijkstra")
	assert.Contains(t, out, "pool/1")
	assert.Contains(t, out, "pool/2")

	_, _, err = execute(t, "", "bench", "--runs", "0")
	assert.Error(t, err)

	assert.NotPanics(t, func() {
		_, _, err = execute(t, "", "bench", "--delta", "inf", "--runs", "1", "--workers", "1")
	})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "version dev")
}

func TestSummarize(t *testing.T) {
	_, err := summarize(nil)
	assert.Error(t, err)

	l, err := summarize([]time.Duration{time.Millisecond, 3 * time.Millisecond})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, l.Mean, 1e-9)
	assert.InDelta(t, 1.0, l.Stddev, 1e-9)
}

func TestVerify_Mismatch(t *testing.T) {
	g := mustChain(t)
	res, err := deltastep.Run(g)
	require.NoError(t, err)

	res.Dist[2] += 0.5
	assert.ErrorIs(t, verify("dijkstra", g, res), ErrVerifyMismatch)
	assert.NoError(t, verify("none", g, res))
	assert.Error(t, verify("bellman-ford", g, res))
}

func TestSameDistance(t *testing.T) {
	inf := math.Inf(1)
	assert.True(t, sameDistance(inf, inf))
	assert.False(t, sameDistance(inf, 1))
	assert.True(t, sameDistance(0.1+0.2, 0.3))
	assert.False(t, sameDistance(1, 1.001))
}

func mustChain(t *testing.T) *core.Graph {
	t.Helper()
	g, err := readGraph(config.InputConfig{Format: "edgelist"}, strings.NewReader(chainGraph))
	require.NoError(t, err)

	return g
}
