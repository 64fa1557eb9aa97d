package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/deltastep/core"
)

// MaxNodes bounds the node count a file may declare or imply, so a stray
// header or id cannot force an unbounded allocation.
const MaxNodes = 1 << 26

// rawEdge is an edge as parsed, before the node count is known.
type rawEdge struct {
	line     int
	from, to int
	weight   float64
}

// Read parses a graph in format f from r. opts are passed to core.NewGraph
// (e.g. core.WithMultiEdges() for inputs with parallel edges).
func Read(r io.Reader, f Format, opts ...core.GraphOption) (*core.Graph, error) {
	var (
		n     int
		edges []rawEdge
		err   error
	)
	switch f {
	case FormatEdgeList:
		n, edges, err = scanEdgeList(r)
	case FormatDIMACS:
		n, edges, err = scanDIMACS(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, err
	}

	g := core.NewGraph(n, opts...)
	for _, e := range edges {
		if err = g.AddEdge(e.from, e.to, e.weight); err != nil {
			return nil, fmt.Errorf("edgelist: line %d: %w", e.line, err)
		}
	}

	return g, nil
}

// scanEdgeList reads "u v [w]" lines with an optional "n <count>" header.
func scanEdgeList(r io.Reader) (int, []rawEdge, error) {
	sc := bufio.NewScanner(r)
	var (
		edges  []rawEdge
		header = -1
		maxID  = -1
		line   int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		if fields[0] == "n" {
			if header >= 0 || len(edges) > 0 {
				return 0, nil, syntaxError(line, "node count header must come first and only once")
			}
			if len(fields) != 2 {
				return 0, nil, syntaxError(line, "want \"n <count>\", got %q", text)
			}
			c, err := strconv.Atoi(fields[1])
			if err != nil || c < 0 {
				return 0, nil, syntaxError(line, "bad node count %q", fields[1])
			}
			if c > MaxNodes {
				return 0, nil, syntaxError(line, "node count %d exceeds %d", c, MaxNodes)
			}
			header = c
			continue
		}

		if len(fields) < 2 || len(fields) > 3 {
			return 0, nil, syntaxError(line, "want \"u v [w]\", got %q", text)
		}
		e := rawEdge{line: line, weight: 1}
		var err error
		if e.from, err = strconv.Atoi(fields[0]); err != nil {
			return 0, nil, syntaxError(line, "bad node id %q", fields[0])
		}
		if e.to, err = strconv.Atoi(fields[1]); err != nil {
			return 0, nil, syntaxError(line, "bad node id %q", fields[1])
		}
		if len(fields) == 3 {
			if e.weight, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return 0, nil, syntaxError(line, "bad weight %q", fields[2])
			}
		}
		if e.from >= MaxNodes || e.to >= MaxNodes {
			return 0, nil, syntaxError(line, "node id %d exceeds %d", max(e.from, e.to), MaxNodes-1)
		}
		maxID = max(maxID, e.from, e.to)
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return 0, nil, fmt.Errorf("edgelist: read: %w", err)
	}

	if header >= 0 {
		return header, edges, nil
	}

	return maxID + 1, edges, nil
}

// scanDIMACS reads "p sp n m" / "a u v w" / "c ..." lines.
func scanDIMACS(r io.Reader) (int, []rawEdge, error) {
	sc := bufio.NewScanner(r)
	var (
		edges []rawEdge
		n, m  = -1, -1
		line  int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		switch fields[0] {
		case "c":
			continue
		case "p":
			if n >= 0 {
				return 0, nil, syntaxError(line, "duplicate problem line")
			}
			if len(fields) != 4 || fields[1] != "sp" {
				return 0, nil, syntaxError(line, "want \"p sp <n> <m>\", got %q", text)
			}
			var err1, err2 error
			n, err1 = strconv.Atoi(fields[2])
			m, err2 = strconv.Atoi(fields[3])
			if err1 != nil || err2 != nil || n < 0 || m < 0 {
				return 0, nil, syntaxError(line, "bad problem sizes %q", text)
			}
			if n > MaxNodes {
				return 0, nil, syntaxError(line, "node count %d exceeds %d", n, MaxNodes)
			}
			// m is checked against the arcs actually read
			edges = make([]rawEdge, 0, min(m, 1<<20))
		case "a":
			if n < 0 {
				return 0, nil, syntaxError(line, "arc before problem line")
			}
			if len(fields) != 4 {
				return 0, nil, syntaxError(line, "want \"a <u> <v> <w>\", got %q", text)
			}
			u, err1 := strconv.Atoi(fields[1])
			v, err2 := strconv.Atoi(fields[2])
			w, err3 := strconv.ParseFloat(fields[3], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return 0, nil, syntaxError(line, "bad arc %q", text)
			}
			// 1-based on disk; out-of-range ids are left for core to reject
			edges = append(edges, rawEdge{line: line, from: u - 1, to: v - 1, weight: w})
		default:
			return 0, nil, syntaxError(line, "unknown line type %q", fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return 0, nil, fmt.Errorf("edgelist: read: %w", err)
	}
	if n < 0 {
		return 0, nil, syntaxError(line, "missing problem line")
	}
	if len(edges) != m {
		return 0, nil, syntaxError(line, "problem line declares %d arcs, found %d", m, len(edges))
	}

	return n, edges, nil
}
