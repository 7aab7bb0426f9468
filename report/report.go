// SPDX-License-Identifier: MIT

// Package report renders experiment results.
//
// A Reporter receives one ExactRun per experiment followed by one
// SampledRun per walk count. Three sinks ship with the package:
//
//   - Text: human-readable lines on an io.Writer.
//   - JSON: one JSON object per event (JSON Lines).
//   - Log:  zerolog events on a caller-supplied logger.
//
// Reporters are not safe for concurrent use.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvrank/topk"
)

// ErrUnknownFormat is returned by New for unknown format names.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format names accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatLog  = "log"
)

// ExactRun describes one power-iteration solve.
type ExactRun struct {
	Duration   time.Duration
	Iterations int
	Residual   float64
	Converged  bool
	Rank       []float64
}

// SampledRun describes one Monte Carlo estimate and its top-K errors.
type SampledRun struct {
	Walks    int
	Seed     int64
	Duration time.Duration
	Steps    int64
	Errors   []topk.Result
}

// Reporter consumes experiment events.
type Reporter interface {
	Exact(ExactRun) error
	Sampled(SampledRun) error
}

// New returns the reporter registered under format. w receives Text and JSON
// output; logger receives Log output.
func New(format string, w io.Writer, logger zerolog.Logger) (Reporter, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return NewText(w), nil
	case FormatJSON:
		return NewJSON(w), nil
	case FormatLog:
		return NewLog(logger), nil
	default:
		return nil, fmt.Errorf("New: %q: %w", format, ErrUnknownFormat)
	}
}

// Multi fans every event out to all reporters, stopping at the first error.
type Multi []Reporter

// Exact implements Reporter.
func (m Multi) Exact(run ExactRun) error {
	for _, r := range m {
		if err := r.Exact(run); err != nil {
			return err
		}
	}
	return nil
}

// Sampled implements Reporter.
func (m Multi) Sampled(run SampledRun) error {
	for _, r := range m {
		if err := r.Sampled(run); err != nil {
			return err
		}
	}
	return nil
}
