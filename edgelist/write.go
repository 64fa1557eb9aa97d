package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/deltastep/core"
)

// Write serialises g in format f. Edges are written in core.Graph.Edges()
// order, so Read(Write(g)) reproduces g.
func Write(w io.Writer, g *core.Graph, f Format) error {
	bw := bufio.NewWriter(w)
	edges := g.Edges()

	switch f {
	case FormatEdgeList:
		fmt.Fprintf(bw, "# %d nodes, %d edges\n", g.Order(), len(edges))
		fmt.Fprintf(bw, "n %d\n", g.Order())
		for _, e := range edges {
			fmt.Fprintf(bw, "%d %d %s\n", e.From, e.To, formatWeight(e.Weight))
		}
	case FormatDIMACS:
		fmt.Fprintf(bw, "p sp %d %d\n", g.Order(), len(edges))
		for _, e := range edges {
			fmt.Fprintf(bw, "a %d %d %s\n", e.From+1, e.To+1, formatWeight(e.Weight))
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	return bw.Flush()
}

// formatWeight uses the shortest representation that parses back exactly.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
