// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the graph loader.
// This file defines:
//   - DanglingPolicy / DuplicatePolicy enums with String and Parse helpers,
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No hidden defaults: both policies are named values, not implicit
//     behavior of a division that happened to be skipped.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"fmt"
	"strings"
)

// DanglingPolicy decides what a zero out-degree column becomes.
type DanglingPolicy int

const (
	// DanglingUniform spreads the column as 1/N over every row, so a walker
	// on a dangling node jumps to a uniformly random node. Every column of
	// M then sums to 1 and rank mass is conserved.
	DanglingUniform DanglingPolicy = iota

	// DanglingAbsorb leaves the column all-zero. Rank mass reaching the node
	// is lost each step; walkers stop there.
	DanglingAbsorb

	// DanglingReject fails Build with ErrDanglingNode.
	DanglingReject
)

// DuplicatePolicy decides how a repeated (source, destination) link is handled.
type DuplicatePolicy int

const (
	// DuplicateCollapse keeps one link per ordered pair (set semantics).
	DuplicateCollapse DuplicatePolicy = iota

	// DuplicateReject fails Build with ErrDuplicateEdge.
	DuplicateReject
)

// Defaults (single source of truth).
const (
	DefaultDangling   = DanglingUniform
	DefaultDuplicates = DuplicateCollapse

	// DefaultEpsilon is the tolerance used by ValidateColumnStochastic callers.
	DefaultEpsilon = 1e-9
)

const (
	panicDanglingInvalid  = "matrix: WithDangling: unknown policy"
	panicDuplicateInvalid = "matrix: WithDuplicates: unknown policy"
)

var danglingNames = [...]string{
	DanglingUniform: "uniform",
	DanglingAbsorb:  "absorb",
	DanglingReject:  "reject",
}

var duplicateNames = [...]string{
	DuplicateCollapse: "collapse",
	DuplicateReject:   "reject",
}

// String returns the config name of p ("uniform", "absorb", "reject").
func (p DanglingPolicy) String() string {
	if p < 0 || int(p) >= len(danglingNames) {
		return fmt.Sprintf("DanglingPolicy(%d)", int(p))
	}

	return danglingNames[p]
}

// String returns the config name of p ("collapse", "reject").
func (p DuplicatePolicy) String() string {
	if p < 0 || int(p) >= len(duplicateNames) {
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}

	return duplicateNames[p]
}

// ParseDanglingPolicy maps a case-insensitive name to a DanglingPolicy.
func ParseDanglingPolicy(name string) (DanglingPolicy, error) {
	for i, s := range danglingNames {
		if strings.EqualFold(name, s) {
			return DanglingPolicy(i), nil
		}
	}

	return 0, fmt.Errorf("dangling %q: %w", name, ErrUnknownPolicy)
}

// ParseDuplicatePolicy maps a case-insensitive name to a DuplicatePolicy.
func ParseDuplicatePolicy(name string) (DuplicatePolicy, error) {
	for i, s := range duplicateNames {
		if strings.EqualFold(name, s) {
			return DuplicatePolicy(i), nil
		}
	}

	return 0, fmt.Errorf("duplicates %q: %w", name, ErrUnknownPolicy)
}

// Option mutates loader options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective loader configuration.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	dangling   DanglingPolicy
	duplicates DuplicatePolicy
}

// WithDangling selects the dangling-node policy. Panics on unknown values.
func WithDangling(p DanglingPolicy) Option {
	if p < DanglingUniform || p > DanglingReject {
		panic(panicDanglingInvalid)
	}
	return func(o *Options) {
		o.dangling = p
	}
}

// WithDuplicates selects the duplicate-edge policy. Panics on unknown values.
func WithDuplicates(p DuplicatePolicy) Option {
	if p < DuplicateCollapse || p > DuplicateReject {
		panic(panicDuplicateInvalid)
	}
	return func(o *Options) {
		o.duplicates = p
	}
}

// gatherOptions resolves defaults and applies opts in order.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		dangling:   DefaultDangling,
		duplicates: DefaultDuplicates,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
