// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"
)

// Text writes the classic experiment transcript:
//
//	### Power iteration (40 iterations)
//	Execution time: 1.2ms
//
//	### Monte Carlo, R=3
//	R: 3 | Execution time: 4.1ms
//	R: 3 | K: 010 | Error/K: 0.000812 | Error: 0.008120
type Text struct {
	w *bufio.Writer
}

// NewText returns a Text reporter on w.
func NewText(w io.Writer) *Text {
	return &Text{w: bufio.NewWriter(w)}
}

// Exact implements Reporter.
func (t *Text) Exact(run ExactRun) error {
	fmt.Fprintf(t.w, "### Power iteration (%d iterations)\n", run.Iterations)
	fmt.Fprintf(t.w, "Execution time: %s\n", run.Duration)
	if run.Converged {
		fmt.Fprintf(t.w, "Converged: residual %.3g\n", run.Residual)
	}

	return t.w.Flush()
}

// Sampled implements Reporter.
func (t *Text) Sampled(run SampledRun) error {
	fmt.Fprintf(t.w, "\n### Monte Carlo, R=%d\n", run.Walks)
	fmt.Fprintf(t.w, "R: %d | Execution time: %s\n", run.Walks, run.Duration)
	for _, e := range run.Errors {
		fmt.Fprintf(t.w, "R: %d | K: %03d | Error/K: %.6f | Error: %.6f\n", run.Walks, e.K, e.Average, e.Total)
	}

	return t.w.Flush()
}
