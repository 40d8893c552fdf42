// SPDX-License-Identifier: MIT
// Package: kembed/builder
//
// impl_random.go: stochastic topologies: Dense, Sparse, Multi.
//
// Contract:
//   • Dense and Multi always need cfg.rng; Sparse needs it only for 0 < p < 1.
//   • Trials visit ordered pairs u asc, v asc; the diagonal only with WithLoops.
//   • One fixed number of RNG draws per admissible pair keeps outcomes stable
//     when unrelated options change.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kembed/graph"
)

const (
	methodDense  = "Dense"
	methodSparse = "Sparse"
	methodMulti  = "Multi"

	denseProbability = 0.8 // chance that a dense pair carries edges
	denseMaxEdges    = 2   // dense pairs carry 1..denseMaxEdges edges
	probMin          = 0.0
	probMax          = 1.0
)

// Dense gives every admissible pair 1–2 parallel edges with probability 0.8.
// Complexity: O(n²) trials.
// Errors: ErrNeedRandSource.
func Dense() Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodDense, ErrNeedRandSource)
		}
		n := g.Size()
		var u, v int
		var hit float64
		var amount int
		for u = 0; u < n; u++ {
			for v = 0; v < n; v++ {
				if !cfg.admissible(u, v) {
					continue
				}
				// both draws happen for every pair, hit or miss
				hit = cfg.rng.Float64()
				amount = 1 + cfg.rng.Intn(denseMaxEdges)
				if hit < denseProbability {
					g.AddEdge(u, v, amount)
				}
			}
		}

		return nil
	}
}

// Sparse adds cfg.weight edges to each admissible pair independently with
// probability p. p ∈ {0,1} is deterministic and needs no RNG.
// Complexity: O(n²) trials.
// Errors: ErrInvalidProbability, ErrNeedRandSource.
func Sparse(p float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodSparse, ErrNeedRandSource)
		}
		n := g.Size()
		var u, v int
		for u = 0; u < n; u++ {
			for v = 0; v < n; v++ {
				if !cfg.admissible(u, v) {
					continue
				}
				switch {
				case p == probMax:
					g.AddEdge(u, v, cfg.weight)
				case p == probMin:
				case cfg.rng.Float64() < p:
					g.AddEdge(u, v, cfg.weight)
				}
			}
		}

		return nil
	}
}

// Multi gives every admissible pair a uniform multiplicity in [0, cfg.maxMult].
// Complexity: O(n²) draws.
// Errors: ErrNeedRandSource.
func Multi() Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodMulti, ErrNeedRandSource)
		}
		n := g.Size()
		var u, v int
		for u = 0; u < n; u++ {
			for v = 0; v < n; v++ {
				if cfg.admissible(u, v) {
					g.AddEdge(u, v, cfg.rng.Intn(cfg.maxMult+1))
				}
			}
		}

		return nil
	}
}
