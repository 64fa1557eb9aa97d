// Package converters adapts core.Graph to gonum's graph packages.
//
// ToGonum and FromGonum move adjacency and weights between core.Graph and
// *simple.WeightedDirectedGraph. GonumDistances runs gonum's own Dijkstra
// (graph/path) on the converted graph and is used as an independent
// oracle for deltastep results.
//
// gonum's simple graphs reject self-loops and parallel edges, so ToGonum
// drops loops and keeps only the lightest of parallel edges. Neither
// changes any shortest-path distance.
package converters
