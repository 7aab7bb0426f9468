// SPDX-License-Identifier: MIT

package edgelist

import "fmt"

// Edge is a directed link From → To between 1-indexed node ids.
type Edge struct {
	From int
	To   int
}

// String renders the edge in wire format ("from to").
func (e Edge) String() string {
	return fmt.Sprintf("%d %d", e.From, e.To)
}

// Source yields edges one at a time.
//
// Next returns the next edge and true, or a zero Edge and false when the
// sequence is exhausted or failed. After Next returns false, Err reports the
// failure (nil on clean exhaustion).
type Source interface {
	Next() (Edge, bool)
	Err() error
}

// Slice is an in-memory Source over a fixed edge slice.
// It is single-pass; use FromSlice again to replay.
type Slice struct {
	edges []Edge
	pos   int
}

// Compile-time assertion.
var _ Source = (*Slice)(nil)

// FromSlice returns a Source over edges. The slice is not copied.
func FromSlice(edges []Edge) *Slice {
	return &Slice{edges: edges}
}

// Next implements Source.
func (s *Slice) Next() (Edge, bool) {
	if s.pos >= len(s.edges) {
		return Edge{}, false
	}
	e := s.edges[s.pos]
	s.pos++

	return e, true
}

// Err implements Source; an in-memory slice never fails.
func (s *Slice) Err() error { return nil }

// ReadAll drains src into a slice.
// Complexity: O(E) time and memory.
func ReadAll(src Source) ([]Edge, error) {
	var out []Edge
	for {
		e, ok := src.Next()
		if !ok {
			break
		}
		out = append(out, e)
	}
	if err := src.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
