// SPDX-License-Identifier: MIT

// Package builder constructs deterministic host/pattern fixtures for the
// kembed solvers: dense multigraphs over vertices 0..n-1.
//
// What it offers:
//
//	BuildGraph(n, bopts, cons...)  allocate an n-vertex graph, resolve options,
//	                               apply constructors in order
//	Chain, Clique, Grid, Empty     structured topologies (no randomness)
//	Dense, Sparse, Multi           stochastic topologies (need WithSeed/WithRand)
//	ByName                         CLI-friendly lookup of the above
//
// Determinism: identical n, options, seed and constructor order produce
// identical graphs. Trials always visit ordered pairs (u,v) with u ascending,
// then v ascending; the diagonal is skipped unless WithLoops() is given.
//
// Error policy: constructors return sentinel errors (errors.Is) and never
// panic; option constructors panic on nonsensical arguments.
//
// Example:
//
//	g, err := builder.BuildGraph(6,
//	  []builder.BuilderOption{builder.WithSeed(42)},
//	  builder.Chain(), builder.Sparse(0.2))
package builder
