// SPDX-License-Identifier: MIT

// Package montecarlo estimates the rank vector by simulating random walks
// with teleportation over a matrix.Transition.
//
// What
//
//   - From every node c, run `walks` independent walks. Each step first
//     draws u ∈ [0,1): u < τ ends the walk (teleport-and-stop); otherwise
//     the walker moves to a uniformly random out-neighbor and that node's
//     hit counter is incremented.
//   - A dangling node under matrix.DanglingUniform moves the walker to a
//     uniformly random node; under matrix.DanglingAbsorb the walk ends.
//   - rank[i] = τ · hits[i] / (N · walks).
//
// Start-visit credit
//
//	By default the walk's starting node is credited with one visit before
//	the first step. With that credit the estimator's expectation equals the
//	fixed point of power iteration under the same dangling policy:
//
//	    E[rank] = (τ/N) · Σ_t (1−τ)^t · M^t · 1
//
//	WithStartVisit(false) counts destinations only, which shifts every
//	expectation down by τ/N and leaves the ordering intact.
//
// Determinism
//
//	Every start node owns a PCG stream derived from the sampler seed and
//	the node index (SplitMix64 mix, see rng.go), so an Estimate depends
//	only on (seed, walks) and never on WithWorkers.
//
// Concurrency
//
//	WithWorkers(k) splits start nodes into k contiguous ranges; each worker
//	owns a private hit slice and the slices are summed at the end. The
//	Transition is shared read-only. EstimateContext stops the workers
//	between start nodes once its context is done.
//
// Complexity
//
//	O(N · walks / τ) expected time (walk length is geometric with mean
//	(1−τ)/τ steps), O(k · N) memory for k workers.
package montecarlo
