// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Comment prefixes skipped by Reader.
const (
	commentHash  = "#"
	commentSlash = "//"
)

// Reader is a streaming Source over a text edge list.
// It stops at the first malformed line; Err then returns a wrapped
// ErrMalformedEdge. A line longer than bufio.MaxScanTokenSize is malformed
// too. Failures of the underlying io.Reader are returned as they are.
type Reader struct {
	sc   *bufio.Scanner
	line int
	err  error
}

// Compile-time assertion.
var _ Source = (*Reader)(nil)

// NewReader wraps r. A nil r yields a Reader whose first Next fails with
// ErrNilReader.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		return &Reader{err: ErrNilReader}
	}

	return &Reader{sc: bufio.NewScanner(r)}
}

// Line returns the number of the last line consumed (1-based).
func (r *Reader) Line() int { return r.line }

// Next implements Source.
// Complexity: O(len(line)) per call.
func (r *Reader) Next() (Edge, bool) {
	if r.err != nil {
		return Edge{}, false
	}
	for r.sc.Scan() {
		r.line++
		raw := strings.TrimSpace(r.sc.Text())
		if raw == "" || strings.HasPrefix(raw, commentHash) || strings.HasPrefix(raw, commentSlash) {
			continue
		}
		e, err := parseEdge(raw)
		if err != nil {
			r.err = fmt.Errorf("line %d: %w", r.line, err)
			return Edge{}, false
		}

		return e, true
	}
	switch err := r.sc.Err(); {
	case errors.Is(err, bufio.ErrTooLong):
		r.err = fmt.Errorf("line %d: %w: %w", r.line+1, ErrMalformedEdge, err)
	case err != nil:
		r.err = fmt.Errorf("line %d: %w", r.line+1, err)
	}

	return Edge{}, false
}

// Err implements Source.
func (r *Reader) Err() error { return r.err }

// parseEdge converts "from to" into an Edge.
func parseEdge(raw string) (Edge, error) {
	tokens := strings.Fields(raw)
	if len(tokens) != 2 {
		return Edge{}, fmt.Errorf("%q: want 2 tokens, got %d: %w", raw, len(tokens), ErrMalformedEdge)
	}
	from, err := strconv.Atoi(tokens[0])
	if err != nil {
		return Edge{}, fmt.Errorf("source %q is not an integer: %w", tokens[0], ErrMalformedEdge)
	}
	to, err := strconv.Atoi(tokens[1])
	if err != nil {
		return Edge{}, fmt.Errorf("destination %q is not an integer: %w", tokens[1], ErrMalformedEdge)
	}

	return Edge{From: from, To: to}, nil
}

// Write renders edges in wire format, one per line.
func Write(w io.Writer, edges []Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.From, e.To); err != nil {
			return err
		}
	}

	return bw.Flush()
}
