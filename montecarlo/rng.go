// SPDX-License-Identifier: MIT
// Package montecarlo - RNG utilities shared by the sampler.
//
// Goals:
//   - Determinism: same seed ⇒ identical estimates across platforms and
//     worker counts.
//   - Encapsulation: a single stream factory; no time-based sources here.
//     Non-deterministic runs pick a seed at the CLI boundary.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Each start node gets its own stream.
package montecarlo

import "math/rand/v2"

// defaultRNGSeed is the fixed seed used when no seed option is given.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// value with a SplitMix64 finalizer, so neighboring stream ids decorrelate.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) uint64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// nodeRNG returns the deterministic stream for start node `node`.
// PCG state is two words, so one stream per node stays cheap.
//
// Complexity: O(1).
func nodeRNG(seed int64, node int) *rand.Rand {
	s := uint64(node)

	return rand.New(rand.NewPCG(deriveSeed(seed, s), deriveSeed(^seed, s)))
}

// RunSeed derives the base seed of the run-th sampling run from an
// experiment seed. Runs sharing an experiment seed get unrelated streams.
func RunSeed(experiment int64, run int) int64 {
	return int64(deriveSeed(experiment, uint64(run)))
}
