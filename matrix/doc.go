// Package matrix builds the column-stochastic transition matrix of a
// directed, unweighted graph on a fixed node count.
//
// The matrix package provides:
//
//   - Build, the graph loader: consumes an edgelist.Source and produces an
//     immutable *Transition M where column c is the out-edge distribution
//     of node c (M[d-1, s-1] = 1/outdeg(s) for every link s → d).
//   - An explicit dangling-node policy (WithDangling): spread a zero
//     out-degree column uniformly, keep it absorbing (all zero), or reject
//     the graph with ErrDanglingNode.
//   - An explicit duplicate-edge policy (WithDuplicates): collapse repeated
//     links into one or reject them with ErrDuplicateEdge.
//   - ValidateColumnStochastic for property checks.
//
// Storage is a gonum *mat.Dense (O(N²) memory) plus per-column neighbor
// lists so random-walk samplers can draw an out-neighbor in O(1).
//
// A Transition is read-only after Build and safe for concurrent readers.
package matrix
