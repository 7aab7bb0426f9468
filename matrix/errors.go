// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All loader and validator failures are one of these sentinels, wrapped with
// context via fmt.Errorf("ctx: %w", ErrX). Tests MUST check them with
// errors.Is. Build never panics on user input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
//
// ERROR PRIORITY (enforced in Build):
// node count -> nil source -> per-edge range -> duplicates -> source errors
// -> dangling policy.

var (
	// ErrBadNodeCount is returned when the configured node count is < 1.
	ErrBadNodeCount = errors.New("matrix: node count must be > 0")

	// ErrNilSource indicates that Build received a nil edge source.
	ErrNilSource = errors.New("matrix: edge source is nil")

	// ErrNodeOutOfRange indicates an edge endpoint outside [1, N]; the
	// configured N does not match the input graph.
	ErrNodeOutOfRange = errors.New("matrix: node id out of range")

	// ErrDuplicateEdge indicates a repeated link under DuplicateReject.
	ErrDuplicateEdge = errors.New("matrix: duplicate edge")

	// ErrDanglingNode indicates a zero out-degree node under DanglingReject.
	ErrDanglingNode = errors.New("matrix: dangling node")

	// ErrNilTransition indicates that a nil *Transition was passed in.
	ErrNilTransition = errors.New("matrix: nil transition")

	// ErrNotColumnStochastic signals a column whose sum deviates from its
	// policy target (1, or 0 for absorbing columns) by more than eps.
	ErrNotColumnStochastic = errors.New("matrix: column is not stochastic within eps")

	// ErrDimensionMismatch indicates a vector whose length differs from N.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrUnknownPolicy is returned by the Parse* helpers for unknown names.
	ErrUnknownPolicy = errors.New("matrix: unknown policy")
)
