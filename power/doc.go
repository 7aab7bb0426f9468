// Package power computes the exact rank vector by power iteration.
//
// What
//
//	Starting from the uniform vector R₀ = 1/N, Solve repeats
//
//	    R ← (τ/N)·1 + (1−τ)·M·R
//
//	for Options.Iterations steps, where M is a column-stochastic
//	matrix.Transition and τ is the teleportation probability.
//
// Termination
//
//	Iteration-count based: the default 40 steps are enough for τ = 0.2 at
//	small-to-medium scale (the error shrinks like (1−τ)^I). Setting
//	Options.Tolerance > 0 adds a residual criterion: Solve stops as soon as
//	‖R_next − R‖₁ < Tolerance, and reports Converged = true.
//
// Mass
//
//	With matrix.DanglingUniform every column sums to 1 and Σ R = 1 at every
//	step. With matrix.DanglingAbsorb mass reaching dangling nodes leaks and
//	Σ R < 1.
//
// Complexity
//
//	O(I · N²) time (dense MulVec), O(N) extra memory.
package power
