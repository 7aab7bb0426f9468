// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(bopts, cons...). Resolves options, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical edges.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/katalvlaran/lvrank/edgelist"
)

// Graph is a generated edge list over nodes 1..N.
type Graph struct {
	N     int
	Edges []edgelist.Edge
}

// Source returns a fresh single-pass edgelist.Source over g.Edges.
func (g *Graph) Source() edgelist.Source {
	return edgelist.FromSlice(g.Edges)
}

// Emitter accumulates the edges of one Build call, dropping repeats so the
// result is a simple directed graph. Constructors receive it together with
// the resolved options.
type Emitter struct {
	n     int
	edges []edgelist.Edge
	seen  map[edgelist.Edge]struct{}
	cfg   builderConfig
}

// N returns the current node range 1..N.
func (e *Emitter) N() int { return e.n }

// Grow widens the node range to at least n.
func (e *Emitter) Grow(n int) {
	if n > e.n {
		e.n = n
	}
}

// Link records from → to unless already present. Ids are 1-based; the
// node range grows to cover both endpoints.
func (e *Emitter) Link(from, to int) {
	e.Grow(max(from, to))
	k := edgelist.Edge{From: from, To: to}
	if _, ok := e.seen[k]; ok {
		return
	}
	e.seen[k] = struct{}{}
	e.edges = append(e.edges, k)
}

// Rand returns the RNG set by WithSeed or WithRand, or nil.
func (e *Emitter) Rand() *rand.Rand { return e.cfg.rng }

// SelfLoops reports whether WithSelfLoops(true) was given.
func (e *Emitter) SelfLoops() bool { return e.cfg.selfLoops }

// Constructor applies a deterministic topology to e. Constructors MUST
// validate parameters early and return sentinel errors (no panics).
type Constructor func(e *Emitter) error

// Build resolves bopts and applies all constructors in order. Constructor
// errors are wrapped with "Build: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor; O(E) for de-duplication.
func Build(bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	e := &Emitter{
		seen: make(map[edgelist.Edge]struct{}),
		cfg:  newBuilderConfig(bopts...),
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(e); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	if e.n == 0 {
		return nil, fmt.Errorf("Build: no constructors: %w", ErrConstructFailed)
	}

	return &Graph{N: e.n, Edges: e.edges}, nil
}

// Kind names accepted by ByName.
const (
	KindCycle    = "cycle"
	KindPath     = "path"
	KindStar     = "star"
	KindComplete = "complete"
	KindRandom   = "random"
)

// ByName maps a kind name to its constructor. p is used by KindRandom only.
func ByName(kind string, n int, p float64) (Constructor, error) {
	switch strings.ToLower(kind) {
	case KindCycle:
		return Cycle(n), nil
	case KindPath:
		return Path(n), nil
	case KindStar:
		return Star(n), nil
	case KindComplete:
		return Complete(n), nil
	case KindRandom:
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("ByName: %q: %w", kind, ErrUnknownKind)
	}
}
