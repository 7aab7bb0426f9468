// Package lvrank computes PageRank over directed edge lists two ways and
// measures how far the cheap estimate strays from the exact answer.
//
// What is inside:
//
//	edgelist/    Edge, Source iterator, "from to" text reader and writer
//	matrix/      column-stochastic transition matrix M (gonum mat storage)
//	power/       power iteration R ← τ/N + (1−τ)·M·R, optional L1 tolerance
//	montecarlo/  seeded random-walk estimator, parallel over start nodes
//	topk/        top-K absolute error of an estimate against the exact vector
//	builder/     deterministic synthetic graphs
//	report/      text, JSON Lines and zerolog sinks
//	experiment/  load once, solve, sample per walk count, evaluate, report
//	config/      viper-backed settings with LVRANK_* env overrides
//	cmd/lvrank   cobra CLI: run, rank, generate
//
// Quick example (K2, two nodes linking to each other):
//
//	1 ⇄ 2   ⇒   power: [0.5 0.5]   montecarlo (many walks): ≈ [0.5 0.5]
//
// Node ids on the wire are 1..N; every vector in the API is 0-indexed.
//
//	go install github.com/katalvlaran/lvrank/cmd/lvrank@latest
package lvrank
