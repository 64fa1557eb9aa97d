package edgelist_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/deltastep/core"
	"github.com/katalvlaran/deltastep/deltastep"
	"github.com/katalvlaran/deltastep/edgelist"
)

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]edgelist.Format{
		"": edgelist.FormatEdgeList, "EdgeList": edgelist.FormatEdgeList, "el": edgelist.FormatEdgeList,
		"dimacs": edgelist.FormatDIMACS, "gr": edgelist.FormatDIMACS,
	} {
		got, err := edgelist.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := edgelist.ParseFormat("graphml")
	assert.ErrorIs(t, err, edgelist.ErrUnknownFormat)
}

func TestRead_EdgeList(t *testing.T) {
	in := `# chain
0 1 1
1 2 2.5

2 3
`
	g, err := edgelist.Read(strings.NewReader(in), edgelist.FormatEdgeList)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2.5},
		{From: 2, To: 3, Weight: 1},
	}, g.Edges())
}

func TestRead_EdgeListHeader(t *testing.T) {
	g, err := edgelist.Read(strings.NewReader("n 6\n0 1 1\n"), edgelist.FormatEdgeList)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Order())

	g, err = edgelist.Read(strings.NewReader("n 0\n"), edgelist.FormatEdgeList)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())
}

func TestRead_DIMACS(t *testing.T) {
	in := `c tiny
p sp 3 2
a 1 2 4
a 2 3 1
`
	g, err := edgelist.Read(strings.NewReader(in), edgelist.FormatDIMACS)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: 1},
	}, g.Edges())
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		f    edgelist.Format
		in   string
		err  error
		line string
	}{
		{"too few fields", edgelist.FormatEdgeList, "0 1 1\n7\n", edgelist.ErrSyntax, "line 2"},
		{"bad id", edgelist.FormatEdgeList, "a 1\n", edgelist.ErrSyntax, "line 1"},
		{"bad weight", edgelist.FormatEdgeList, "0 1 x\n", edgelist.ErrSyntax, "line 1"},
		{"late header", edgelist.FormatEdgeList, "0 1\nn 3\n", edgelist.ErrSyntax, "line 2"},
		{"negative weight", edgelist.FormatEdgeList, "0 1 -2\n", core.ErrNegativeWeight, "line 1"},
		{"out of range with header", edgelist.FormatEdgeList, "n 2\n0 5 1\n", core.ErrNodeOutOfRange, "line 2"},
		{"nan weight", edgelist.FormatEdgeList, "0 1 NaN\n", core.ErrBadWeight, "line 1"},
		{"arc before problem", edgelist.FormatDIMACS, "a 1 2 3\n", edgelist.ErrSyntax, "line 1"},
		{"missing problem", edgelist.FormatDIMACS, "c nothing\n", edgelist.ErrSyntax, "missing"},
		{"arc count mismatch", edgelist.FormatDIMACS, "p sp 2 2\na 1 2 1\n", edgelist.ErrSyntax, "declares 2"},
		{"zero id", edgelist.FormatDIMACS, "p sp 2 1\na 0 1 1\n", core.ErrNodeOutOfRange, "line 2"},
		{"huge header", edgelist.FormatEdgeList, "n 4000000000000\n", edgelist.ErrSyntax, "line 1"},
		{"huge id", edgelist.FormatEdgeList, "# big\n0 99999999999\n", edgelist.ErrSyntax, "line 2"},
		{"huge problem", edgelist.FormatDIMACS, "p sp 4000000000000 0\n", edgelist.ErrSyntax, "line 1"},
		{"huge arc count", edgelist.FormatDIMACS, "p sp 2 4000000000000\na 1 2 1\n", edgelist.ErrSyntax, "declares 4000000000000"},
		{"unknown line", edgelist.FormatDIMACS, "p sp 1 0\nx\n", edgelist.ErrSyntax, "line 2"},
		{"unknown format", edgelist.Format("csv"), "", edgelist.ErrUnknownFormat, "csv"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := edgelist.Read(strings.NewReader(tc.in), tc.f)
			require.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestRead_MaxNodes(t *testing.T) {
	_, err := edgelist.Read(strings.NewReader(fmt.Sprintf("n %d\n", edgelist.MaxNodes+1)), edgelist.FormatEdgeList)
	assert.ErrorIs(t, err, edgelist.ErrSyntax)

	_, err = edgelist.Read(strings.NewReader(fmt.Sprintf("0 %d\n", edgelist.MaxNodes)), edgelist.FormatEdgeList)
	assert.ErrorIs(t, err, edgelist.ErrSyntax)
}

func TestRead_MultiEdgesNeedOption(t *testing.T) {
	in := "0 1 3\n0 1 2\n"
	_, err := edgelist.Read(strings.NewReader(in), edgelist.FormatEdgeList)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	g, err := edgelist.Read(strings.NewReader(in), edgelist.FormatEdgeList, core.WithMultiEdges())
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())
}

func TestWriteRead_RoundTrip(t *testing.T) {
	g := core.NewGraph(5, core.WithLoops())
	require.NoError(t, g.AddEdge(0, 1, 0.1))
	require.NoError(t, g.AddEdge(1, 1, 0))
	require.NoError(t, g.AddEdge(3, 2, 1e-9))
	require.NoError(t, g.AddEdge(2, 0, 12345.678))

	for _, f := range []edgelist.Format{edgelist.FormatEdgeList, edgelist.FormatDIMACS} {
		var buf bytes.Buffer
		require.NoError(t, edgelist.Write(&buf, g, f))

		back, err := edgelist.Read(&buf, f, core.WithLoops())
		require.NoError(t, err, f)
		assert.Equal(t, g.Order(), back.Order(), f) // isolated node 4 survives
		assert.Equal(t, g.Edges(), back.Edges(), f)
	}

	assert.ErrorIs(t, edgelist.Write(&bytes.Buffer{}, g, "csv"), edgelist.ErrUnknownFormat)
}

// chainResult runs the engine on 0→1→2 plus an isolated node 3.
func chainResult(t *testing.T) *deltastep.Result {
	t.Helper()
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))

	res, err := deltastep.Run(g, deltastep.WithDelta(1), deltastep.WithWorkers(1), deltastep.WithReturnPath())
	require.NoError(t, err)

	return res
}

func TestNewReport(t *testing.T) {
	rep := edgelist.NewReport(chainResult(t), func(v int) string { return string(rune('A' + v)) }, true)
	require.Len(t, rep.Nodes, 4)
	assert.Equal(t, "C", rep.Nodes[2].Label)
	assert.Equal(t, edgelist.Distance(3), rep.Nodes[2].Distance)
	require.NotNil(t, rep.Nodes[2].Pred)
	assert.Equal(t, 1, *rep.Nodes[2].Pred)
	assert.Equal(t, []int{0, 1, 2}, rep.Nodes[2].Path)
	assert.Nil(t, rep.Nodes[0].Pred)
	assert.Nil(t, rep.Nodes[3].Pred)
	assert.Nil(t, rep.Nodes[3].Path)
	assert.True(t, math.IsInf(float64(rep.Nodes[3].Distance), 1))
}

func TestEncodeResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, edgelist.EncodeResult(&buf, edgelist.NewReport(chainResult(t), nil, false), edgelist.OutputJSON))

	var decoded struct {
		Source int `json:"source"`
		Nodes  []struct {
			ID       int      `json:"id"`
			Distance *float64 `json:"distance"`
		} `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Nodes, 4)
	require.NotNil(t, decoded.Nodes[2].Distance)
	assert.Equal(t, 3.0, *decoded.Nodes[2].Distance)
	assert.Nil(t, decoded.Nodes[3].Distance, "unreachable encodes as null")
}

func TestEncodeResult_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, edgelist.EncodeResult(&buf, edgelist.NewReport(chainResult(t), nil, false), edgelist.OutputYAML))
	assert.Contains(t, buf.String(), ".inf")

	var decoded struct {
		Nodes []struct {
			Distance float64 `yaml:"distance"`
		} `yaml:"nodes"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Nodes, 4)
	assert.Equal(t, 1.0, decoded.Nodes[1].Distance)
	assert.True(t, math.IsInf(decoded.Nodes[3].Distance, 1))
}

func TestEncodeResult_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, edgelist.EncodeResult(&buf, edgelist.NewReport(chainResult(t), nil, true), edgelist.OutputText))
	out := buf.String()
	assert.Contains(t, out, "0->1->2")
	assert.Contains(t, out, "inf")

	_, err := edgelist.ParseOutput("xml")
	assert.ErrorIs(t, err, edgelist.ErrUnknownFormat)
	assert.ErrorIs(t, edgelist.EncodeResult(&buf, edgelist.Report{}, "xml"), edgelist.ErrUnknownFormat)
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "inf", edgelist.FormatDistance(math.Inf(1)))
	assert.Equal(t, "2.5", edgelist.FormatDistance(2.5))
	assert.Equal(t, "0", edgelist.FormatDistance(0))
}
