// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON writes one object per event, newline-delimited.
//
//	{"event":"exact","duration_ns":...,"iterations":40,...}
//	{"event":"sampled","walks":1,...,"errors":[{"k":10,...}]}
type JSON struct {
	enc *json.Encoder
}

type exactEvent struct {
	Event      string    `json:"event"`
	DurationNS int64     `json:"duration_ns"`
	Iterations int       `json:"iterations"`
	Residual   float64   `json:"residual"`
	Converged  bool      `json:"converged"`
	Rank       []float64 `json:"rank"`
}

type errorEntry struct {
	K       int     `json:"k"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
}

type sampledEvent struct {
	Event      string       `json:"event"`
	Walks      int          `json:"walks"`
	Seed       int64        `json:"seed"`
	DurationNS int64        `json:"duration_ns"`
	Steps      int64        `json:"steps"`
	Errors     []errorEntry `json:"errors"`
}

// NewJSON returns a JSON reporter on w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

// Exact implements Reporter.
func (j *JSON) Exact(run ExactRun) error {
	ev := exactEvent{
		Event:      "exact",
		DurationNS: run.Duration.Nanoseconds(),
		Iterations: run.Iterations,
		Residual:   run.Residual,
		Converged:  run.Converged,
		Rank:       run.Rank,
	}
	if err := j.enc.Encode(ev); err != nil {
		return fmt.Errorf("JSON.Exact: %w", err)
	}
	return nil
}

// Sampled implements Reporter.
func (j *JSON) Sampled(run SampledRun) error {
	ev := sampledEvent{
		Event:      "sampled",
		Walks:      run.Walks,
		Seed:       run.Seed,
		DurationNS: run.Duration.Nanoseconds(),
		Steps:      run.Steps,
		Errors:     make([]errorEntry, len(run.Errors)),
	}
	for i, e := range run.Errors {
		ev.Errors[i] = errorEntry{K: e.K, Total: e.Total, Average: e.Average}
	}
	if err := j.enc.Encode(ev); err != nil {
		return fmt.Errorf("JSON.Sampled: %w", err)
	}
	return nil
}
