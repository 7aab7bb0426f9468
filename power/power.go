package power

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvrank/matrix"
)

// Validate checks the option domains.
func (o Options) Validate() error {
	if !(o.Teleport > 0 && o.Teleport < 1) {
		return fmt.Errorf("teleport=%g: %w", o.Teleport, ErrBadTeleport)
	}
	if o.Iterations < 1 {
		return fmt.Errorf("iterations=%d: %w", o.Iterations, ErrBadIterations)
	}
	if o.Tolerance < 0 || math.IsNaN(o.Tolerance) {
		return fmt.Errorf("tolerance=%g: %w", o.Tolerance, ErrBadTolerance)
	}

	return nil
}

// Solve runs power iteration on t.
// The returned Rank is freshly allocated per call.
func Solve(t *matrix.Transition, opts Options) (Result, error) {
	if t == nil {
		return Result{}, fmt.Errorf("Solve: %w", ErrNilTransition)
	}
	if err := opts.Validate(); err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}

	n := t.N()
	r := make([]float64, n)
	floats.AddConst(1/float64(n), r)
	next := make([]float64, n)

	res := Result{}
	for res.Iterations < opts.Iterations {
		step(t, next, r, opts.Teleport)
		res.Iterations++
		res.Residual = floats.Distance(next, r, 1)
		r, next = next, r
		if opts.Tolerance > 0 && res.Residual < opts.Tolerance {
			res.Converged = true
			break
		}
	}
	res.Rank = r

	return res, nil
}

// Step applies one iteration to r and returns the new vector.
// It is the building block of Solve, exposed for equilibrium checks.
func Step(t *matrix.Transition, r []float64, teleport float64) ([]float64, error) {
	if t == nil {
		return nil, fmt.Errorf("Step: %w", ErrNilTransition)
	}
	if err := matrix.ValidateVecLen(t, r); err != nil {
		return nil, fmt.Errorf("Step: %w", err)
	}
	if !(teleport > 0 && teleport < 1) {
		return nil, fmt.Errorf("Step: teleport=%g: %w", teleport, ErrBadTeleport)
	}
	next := make([]float64, t.N())
	step(t, next, r, teleport)

	return next, nil
}

// step writes (τ/N)·1 + (1−τ)·M·r into dst. Lengths are trusted.
func step(t *matrix.Transition, dst, r []float64, teleport float64) {
	n := t.N()
	mat.NewVecDense(n, dst).MulVec(t.Dense(), mat.NewVecDense(n, r))
	floats.Scale(1-teleport, dst)
	floats.AddConst(teleport/float64(t.N()), dst)
}
