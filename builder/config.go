// SPDX-License-Identifier: MIT
// Package: deltastep/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng           = nil                 (pure/deterministic unless seeded)
//   • weightFn      = DefaultWeightFn     (constant DefaultEdgeWeight)
//   • bidirectional = false               (Path/Cycle emit forward edges only)

package builder

import "golang.org/x/exp/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Mirror every emitted edge u→v with v→u of the same weight.
	bidirectional bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
