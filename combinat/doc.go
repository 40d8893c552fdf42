// SPDX-License-Identifier: MIT

// Package combinat provides the enumeration primitives behind the kembed
// solvers: subsets as strictly increasing tuples, permutations, and
// mixed-radix words, plus a clamped binomial coefficient.
//
// Every generator is an iter.Seq[[]int]:
//   - finite and deterministic: the same call always yields the same tuples in
//     the same canonical order;
//   - restartable: ranging a sequence twice replays it from the start;
//   - value-producing: each yielded slice is freshly allocated and may be
//     retained or modified by the consumer.
//
// Canonical orders:
//
//	Combinations(r, n)  lexicographic, [0..r-1] first, [n-r..n-1] last   C(n,r) tuples
//	Permutations(m)     Heap's minimal-change order, identity first       m! tuples
//	Words(len, base)    odometer, index 0 is the least-significant digit  base^len tuples
//
// Callers that need random access (the exact solver) materialize a sequence
// with slices.Collect.
package combinat
