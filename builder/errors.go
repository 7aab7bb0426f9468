// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Return ONLY these sentinels for validation classes (size/probability/rng).
//   • Do NOT stringify parameters into sentinel definitions; use %w wrapping instead.
//   • Check with errors.Is in tests and production code; avoid string comparisons.

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the constructor's minimum.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error at the orchestration
// level (e.g., a nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind is returned by ByName for unknown topology names.
var ErrUnknownKind = errors.New("builder: unknown topology kind")

// --- Implementation Notes ----------------------------------------------------
//
// Priority (tie-break guidance when multiple validations fail):
//    • ErrTooFewVertices: size checks first.
//    • ErrInvalidProbability: then probability ranges.
//    • ErrNeedRandSource: then RNG presence for stochastic builders.
