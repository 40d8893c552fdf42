// SPDX-License-Identifier: MIT

// Package embed computes the minimum number of edits that make a host graph G
// contain at least k embeddings of a pattern graph H.
//
// An embedding (copy) is an injective map φ from H's vertices into the
// extended host such that H.Edge(u,v) ≤ G′.Edge(φ(u),φ(v)) for every ordered
// pair, self-loops included. An edit is one appended vertex or one unit
// increment of one edge. Copies may share vertices and edges; nothing forces
// them to be disjoint.
//
// Two solvers share one contract (Solver):
//
//   - ExactSolver: exhaustive search over k distinct size-|H| vertex subsets
//     and one permutation per copy, applied in order to a private working copy
//     of G′ with cost-monotone pruning. Optimal over that search space.
//     Complexity: O(C(S,k) · (|H|!)^k · k·|H|²) with S = C(|G′|,|H|);
//     intended for |H| ≲ 4, k ≲ 3.
//
//   - ApproximateSolver: a single greedy pass. Both graphs' vertices are
//     sorted by out-degree (descending, stable), the first k subsets are
//     taken in lexicographic order and sorted pattern vertices are aligned
//     onto them.
//     Complexity: O(|G′|² + k·|H|²). No optimality guarantee.
//
// Both first append the fewest vertices m such that C(|G|+m, |H|) ≥ k
// (MissingVertices); each appended vertex costs one edit. Neither solver
// mutates its arguments: the extension is a new, owned Graph.
//
// Solver calls are synchronous and allocate their working state per call, so
// one solver value may be reused across independent calls. There is no
// cancellation: large inputs simply run to completion.
//
// Usage:
//
//	res, err := embed.Solve(g, h, 2, embed.WithAlgorithm(embed.Exact))
//	if err != nil {
//	  // ErrNilGraph, ErrEmptyPattern, ErrInvalidCopies, ErrUnsupportedAlgorithm
//	}
//	fmt.Println(res.Cost, res.Mapping)
package embed
