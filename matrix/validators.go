// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Canonical structural checks on a built Transition.
//  - Return sentinel errors wrapped with a validator tag and the column.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateColumnStochastic checks every column sum against its target:
// 1 for linked columns and uniform dangling columns, 0 for absorbing ones.
//
// Errors: ErrNilTransition, or ErrNotColumnStochastic naming the column.
// Complexity: O(N²).
func ValidateColumnStochastic(t *Transition, eps float64) error {
	if t == nil {
		return validatorErrorf("ValidateColumnStochastic", ErrNilTransition)
	}
	for j := 0; j < t.n; j++ {
		want := 1.0
		if t.dangling[j] && t.policy == DanglingAbsorb {
			want = 0
		}
		sum := floats.Sum(t.Column(j))
		if math.Abs(sum-want) > eps {
			return validatorErrorf(
				fmt.Sprintf("ValidateColumnStochastic: column %d sums to %g, want %g", j, sum, want),
				ErrNotColumnStochastic)
		}
	}

	return nil
}

// ValidateVecLen checks that v has length t.N().
// Complexity: O(1).
func ValidateVecLen(t *Transition, v []float64) error {
	if t == nil {
		return validatorErrorf("ValidateVecLen", ErrNilTransition)
	}
	if len(v) != t.n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len=%d n=%d", len(v), t.n), ErrDimensionMismatch)
	}

	return nil
}
