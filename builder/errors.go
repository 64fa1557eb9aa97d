// SPDX-License-Identifier: MIT
// Package: deltastep/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w ("<Method>: ...: %w").
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).
//
// Priority when several validations fail:
//   • ErrTooFewVertices     — size checks first (n, rows, cols).
//   • ErrInvalidProbability — then probability ranges.
//   • ErrNeedRandSource     — then RNG presence for stochastic builders.
//   • core errors           — AddEdge failures (e.g. a WeightFn returned NaN).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// in the resolved builderConfig (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed
// (e.g. a nil constructor passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownScheme indicates an unrecognised label scheme name.
var ErrUnknownScheme = errors.New("builder: unknown label scheme")
