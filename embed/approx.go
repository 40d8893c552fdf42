// SPDX-License-Identifier: MIT

package embed

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/kembed/combinat"
	"github.com/katalvlaran/kembed/graph"
	"github.com/rs/zerolog"
)

const methodApprox = "ApproximateSolver.Solve"

// ApproximateSolver is the single-pass degree-aligned greedy heuristic.
type ApproximateSolver struct {
	logger zerolog.Logger
}

// NewApproximateSolver returns a greedy solver. Only WithLogger is meaningful here.
func NewApproximateSolver(opts ...Option) *ApproximateSolver {
	o := newOptions(opts...)

	return &ApproximateSolver{logger: o.logger}
}

// Solve implements Solver.
//
// Algorithm:
//  1. Extend g exactly as ExactSolver does.
//  2. tG, tH = vertices of G′ and H sorted by out-degree, descending; equal
//     degrees keep index order (stable sort). Both orders are computed once,
//     before any edge is added.
//  3. For the first k tuples P of Combinations(|H|,|G′|), map pattern vertex
//     tH[u] onto host vertex tG[P[u]] and add every positive deficit.
//
// There is no search and no rejection: the result is always feasible and its
// cost never exceeds adding every pattern edge k times plus the extension.
//
// Complexity: O(n log n + m log m + k·m²) time with n = |G′| and m = |H|,
// plus O(n²) to extend and clone the host.
//
// Errors: ErrNilGraph, ErrEmptyPattern, ErrInvalidCopies (wrapped as
// "ApproximateSolver.Solve: ...").
func (s *ApproximateSolver) Solve(g, h *graph.Graph, k int) (Result, error) {
	host, missing, err := prepare(methodApprox, g, h, k)
	if err != nil {
		return Result{}, err
	}

	// degrees are frozen here; later additions do not reorder vertices
	tG := degreeOrder(host)
	tH := degreeOrder(h)
	m := h.Size()
	mapping := make([][]int, 0, k)
	added := 0
	var u, v, gu, gv, d int
	for p := range combinat.Combinations(m, host.Size()) {
		if len(mapping) == k {
			break
		}
		// φ(tH[u]) = tG[p[u]]: heaviest pattern vertex onto heaviest chosen host vertex
		phi := make([]int, m)
		for u = 0; u < m; u++ {
			phi[tH[u]] = tG[p[u]]
		}
		for u = 0; u < m; u++ {
			gu = tG[p[u]]
			for v = 0; v < m; v++ {
				gv = tG[p[v]]
				d = h.Edge(tH[u], tH[v]) - host.Edge(gu, gv)
				if d > 0 {
					host.AddEdge(gu, gv, d)
					added += d
				}
			}
		}
		mapping = append(mapping, phi)
	}

	s.logger.Debug().
		Int("host", g.Size()).
		Int("pattern", m).
		Int("k", k).
		Int("missing", missing).
		Int("added", added).
		Msg("greedy pass finished")

	return Result{
		Graph:           host,
		Cost:            missing + added,
		MissingVertices: missing,
		Mapping:         mapping,
		Stats:           Stats{Candidates: len(mapping)},
	}, nil
}

// degreeOrder returns the vertices of g sorted by out-degree, descending,
// with ties in ascending index order.
func degreeOrder(g *graph.Graph) []int {
	order := make([]int, g.Size())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(g.OutDegree(b), g.OutDegree(a))
	})

	return order
}
