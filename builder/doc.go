// Package builder provides deterministic, functional-options constructors
// for the weighted directed graphs consumed by deltastep and dijkstra:
// test fixtures, CLI `gen` output and benchmark inputs.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new core.Graph, then each Constructor in order.
//     – Constructor: a closure appending nodes and edges to a graph.
//   - Topologies (Constructor factories):
//     – Path, Cycle, Star, Complete, Grid, RandomSparse.
//   - Configuration (BuilderOption):
//     – WithSeed / WithRand:   RNG for RandomSparse and random weights.
//     – WithWeightFn and the WithXWeight shorthands.
//     – WithBidirectional:     mirror every emitted edge.
//   - Edge-weight distributions (WeightFn), sampled through gonum's distuv:
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn,
//     NormalWeightFn (clipped at 0), ExponentialWeightFn.
//   - Label schemes (IDFn) for rendering node ids:
//     – DefaultIDFn, ExcelColumnIDFn, HexIDFn, AlphanumericIDFn, PrefixIDFn, LabelScheme.
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order yield identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors wrapped with the method name.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//	    builder.RandomSparse(1000, 0.01),
//	)
package builder
