// Package edgelist reads and writes core.Graph in two plain-text formats and
// encodes deltastep results for output.
//
// Graph formats:
//
//   - FormatEdgeList ("edgelist"): one edge per line, "u v w" with 0-based
//     ids. The weight may be omitted (defaults to 1). Lines starting with '#'
//     and blank lines are ignored. An optional header "n <count>" fixes the
//     node count; without it N = max id + 1.
//   - FormatDIMACS ("dimacs"): the 9th DIMACS Challenge shortest-path format.
//     "c ..." comments, exactly one "p sp <n> <m>" problem line before any
//     arc, then "a <u> <v> <w>" arcs with 1-based ids.
//
// Parse failures return ErrSyntax wrapped with the 1-based line number;
// invalid edges surface core's sentinel errors.
//
// Result encodings (EncodeResult): "text" (tab-aligned), "json" (unreachable
// distances as null) and "yaml" (unreachable as .inf).
package edgelist
