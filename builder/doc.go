// Package builder provides deterministic generators of directed edge lists
// for experiments, benchmarks and tests.
//
// The package offers the following key components:
//
//   - Build(opts, cons...): one orchestrator that resolves options and runs
//     constructors in order, collecting a de-duplicated edge list on nodes
//     1..N (N = largest node count any constructor asked for).
//   - Topology constructors:
//     – Cycle(n):        i → i+1, n → 1.
//     – Path(n):         i → i+1; node n is dangling.
//     – Star(n):         hub 1 ↔ every leaf 2..n.
//     – Complete(n):     every ordered pair i ≠ j.
//     – RandomSparse(n, p): each ordered pair independently with prob p.
//   - Custom topologies: a Constructor is func(*Emitter) error; Emitter.Link
//     adds an edge, Emitter.Rand and Emitter.SelfLoops expose the options.
//   - Options: WithSeed / WithRand for stochastic constructors,
//     WithSelfLoops for RandomSparse.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical
//     edge lists.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; constructors return sentinel errors, never panic.
//
// The output feeds matrix.Build through Graph.Source, or edgelist.Write for
// files consumed by the CLI.
package builder
