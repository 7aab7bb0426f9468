// SPDX-License-Identifier: MIT
// Package: lvrank/edgelist
//
// errors.go - sentinel errors for the edgelist package.
//
// Error policy:
//   • Readers return ONLY these sentinels, wrapped with line context via %w.
//   • Callers branch with errors.Is; never compare message text.

package edgelist

import "errors"

// ErrMalformedEdge indicates a non-comment line that is not exactly two
// integer tokens. Loading aborts at the first such line.
var ErrMalformedEdge = errors.New("edgelist: malformed edge record")

// ErrNilReader indicates that NewReader received a nil io.Reader.
var ErrNilReader = errors.New("edgelist: nil reader")
