// SPDX-License-Identifier: MIT

package report

import "github.com/rs/zerolog"

// Log emits each event as a zerolog Info record. One record is written per
// top-K result in addition to the run summary.
type Log struct {
	logger zerolog.Logger
}

// NewLog returns a Log reporter on logger.
func NewLog(logger zerolog.Logger) *Log {
	return &Log{logger: logger}
}

// Exact implements Reporter.
func (l *Log) Exact(run ExactRun) error {
	l.logger.Info().
		Str("event", "exact").
		Dur("duration", run.Duration).
		Int("iterations", run.Iterations).
		Float64("residual", run.Residual).
		Bool("converged", run.Converged).
		Int("nodes", len(run.Rank)).
		Msg("power iteration finished")
	return nil
}

// Sampled implements Reporter.
func (l *Log) Sampled(run SampledRun) error {
	l.logger.Info().
		Str("event", "sampled").
		Int("walks", run.Walks).
		Int64("seed", run.Seed).
		Dur("duration", run.Duration).
		Int64("steps", run.Steps).
		Msg("monte carlo finished")
	for _, e := range run.Errors {
		l.logger.Info().
			Int("walks", run.Walks).
			Int("k", e.K).
			Float64("error", e.Total).
			Float64("error_per_k", e.Average).
			Msg("top-k error")
	}
	return nil
}
