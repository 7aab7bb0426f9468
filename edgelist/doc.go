// SPDX-License-Identifier: MIT

// Package edgelist reads and writes directed, unweighted edge lists.
//
// What
//
//   - Edge is a (From, To) pair of 1-indexed node ids.
//   - Source is a pull iterator over edges; Reader streams them from text,
//     Slice serves them from memory.
//   - Write renders edges back into the same text format.
//
// Format
//
//	One edge per line, two whitespace-separated integers:
//
//	    # comment
//	    1 2
//	    2	3
//
//	Blank lines and lines starting with "#" or "//" are skipped. Any other
//	line must hold exactly two base-10 integers, otherwise reading stops
//	with ErrMalformedEdge (wrapped with the line number).
//
// Range checks against a node count are NOT done here; the matrix package
// owns N and reports ErrNodeOutOfRange.
package edgelist
