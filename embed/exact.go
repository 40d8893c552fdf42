// SPDX-License-Identifier: MIT

package embed

import (
	"math"
	"slices"

	"github.com/katalvlaran/kembed/combinat"
	"github.com/katalvlaran/kembed/graph"
	"github.com/rs/zerolog"
)

const methodExact = "ExactSolver.Solve"

// ExactSolver finds a globally minimal extension over its search space:
// every choice of k distinct size-|H| host subsets (in lexicographic order of
// subset ids) combined with every word of k permutation ids.
type ExactSolver struct {
	logger zerolog.Logger
}

// NewExactSolver returns an exact solver. Only WithLogger is meaningful here.
func NewExactSolver(opts ...Option) *ExactSolver {
	o := newOptions(opts...)

	return &ExactSolver{logger: o.logger}
}

// Solve implements Solver.
//
// Algorithm:
//  1. Extend g by MissingVertices(|G|,|H|,k) vertices (one edit each).
//  2. Materialize subsets = Combinations(|H|,|G′|) and perms = Permutations(|H|).
//  3. For every sel in Combinations(k,len(subsets)) and every word in
//     Words(k,len(perms)), apply copy i as φᵢ(u) = subsets[sel[i]][perms[word[i]][u]]
//     onto a fresh clone of G′, adding every positive deficit. Later copies see
//     the edges added by earlier ones.
//  4. Abandon a candidate as soon as its running cost reaches the best cost.
//
// Ties keep the first candidate found in enumeration order.
//
// Complexity: O(C(C(n,m),k) · (m!)^k · k·m²) time in the worst case, with
// n = |G′| and m = |H|; O(C(n,m)·m + m!·m + n²) memory.
//
// Errors: ErrNilGraph, ErrEmptyPattern, ErrInvalidCopies (wrapped as
// "ExactSolver.Solve: ...").
func (s *ExactSolver) Solve(g, h *graph.Graph, k int) (Result, error) {
	host, missing, err := prepare(methodExact, g, h, k)
	if err != nil {
		return Result{}, err
	}

	// 1) materialize the search alphabet once; candidates index into it
	search := exactSearch{
		host:    host,
		pattern: h,
		subsets: slices.Collect(combinat.Combinations(h.Size(), host.Size())),
		perms:   slices.Collect(combinat.Permutations(h.Size())),
	}
	s.logger.Debug().
		Int("host", g.Size()).
		Int("pattern", h.Size()).
		Int("k", k).
		Int("missing", missing).
		Int("subsets", len(search.subsets)).
		Int("permutations", len(search.perms)).
		Msg("exact search prepared")

	// 2) enumerate; best.graph is the clone of the winning candidate
	best, stats := search.run(k, s.logger)

	s.logger.Debug().
		Int("cost", missing+best.cost).
		Int("candidates", stats.Candidates).
		Int("pruned", stats.Pruned).
		Int("improvements", stats.Improvements).
		Msg("exact search finished")

	return Result{
		Graph:           best.graph,
		Cost:            missing + best.cost,
		MissingVertices: missing,
		Mapping:         search.mapping(best.sel, best.word),
		Stats:           stats,
	}, nil
}

// exactSearch holds the immutable inputs of one exact solve.
type exactSearch struct {
	host    *graph.Graph // extended host; cloned per candidate, never mutated
	pattern *graph.Graph
	subsets [][]int // size-|H| host subsets, lexicographic
	perms   [][]int // permutations of [0,|H|), minimal-change order
}

// candidate is a completed assignment: its resulting graph, its edge cost and
// the subset/permutation ids that produced it.
type candidate struct {
	graph *graph.Graph
	cost  int
	sel   []int
	word  []int
}

// run enumerates all assignments and returns the best one. The best-so-far
// value is owned by this loop and replaced only by strictly cheaper
// candidates returned from evaluate.
func (s exactSearch) run(k int, logger zerolog.Logger) (candidate, Stats) {
	best := candidate{cost: math.MaxInt}
	var stats Stats
	for sel := range combinat.Combinations(k, len(s.subsets)) {
		for word := range combinat.Words(k, len(s.perms)) {
			stats.Candidates++
			// bound by the incumbent so losing candidates stop early
			next, ok := s.evaluate(sel, word, best.cost)
			if !ok {
				stats.Pruned++
				continue
			}
			best = next
			stats.Improvements++
			logger.Debug().Int("cost", best.cost).Ints("subsets", sel).Ints("perms", word).Msg("improved")
			if best.cost == 0 {
				// Nothing beats zero and ties keep the earlier candidate.
				return best, stats
			}
		}
	}

	return best, stats
}

// evaluate applies the k copies described by (sel, word) to a private clone
// of the host. It returns ok=false as soon as the running cost reaches bound;
// a returned candidate is therefore always strictly cheaper than bound.
func (s exactSearch) evaluate(sel, word []int, bound int) (candidate, bool) {
	work := s.host.Clone()
	m := s.pattern.Size()
	phi := make([]int, m)
	var (
		cost, i, u, v, d int
		subset, perm     []int
	)
	for i = range sel {
		subset, perm = s.subsets[sel[i]], s.perms[word[i]]
		for u = 0; u < m; u++ {
			phi[u] = subset[perm[u]]
		}
		// raise each image edge to the pattern weight; never lower it
		for u = 0; u < m; u++ {
			for v = 0; v < m; v++ {
				d = s.pattern.Edge(u, v) - work.Edge(phi[u], phi[v])
				if d <= 0 {
					continue
				}
				work.AddEdge(phi[u], phi[v], d)
				cost += d
				if cost >= bound {
					return candidate{}, false
				}
			}
		}
	}

	return candidate{graph: work, cost: cost, sel: sel, word: word}, true
}

// mapping expands subset/permutation ids into per-copy vertex maps.
func (s exactSearch) mapping(sel, word []int) [][]int {
	out := make([][]int, len(sel))
	m := s.pattern.Size()
	for i := range sel {
		out[i] = make([]int, m)
		for u := 0; u < m; u++ {
			out[i][u] = s.subsets[sel[i]][s.perms[word[i]][u]]
		}
	}

	return out
}
