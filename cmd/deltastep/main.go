// Command deltastep computes single-source shortest paths with parallel
// Δ-stepping, generates test graphs and benchmarks worker scaling.
package main

import "github.com/katalvlaran/deltastep/cmd/deltastep/cmd"

func main() {
	cmd.Execute()
}
