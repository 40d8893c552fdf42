// SPDX-License-Identifier: MIT
// Package: kembed/builder
//
// impl_structured.go: deterministic topologies: Empty, Chain, Clique, Grid.
//
// Contract:
//   • No RNG is consulted.
//   • Each emitted edge adds cfg.weight parallel edges.
//   • Self-loops are never emitted by these shapes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kembed/graph"
)

const (
	methodChain  = "Chain"
	methodClique = "Clique"
	methodGrid   = "Grid"
	minGridWidth = 1
)

// Empty returns a Constructor that adds nothing; useful as a named fixture.
func Empty() Constructor {
	return func(*graph.Graph, builderConfig) error { return nil }
}

// Chain links i → i+1 for i = 0..n-2 (train cars).
// Complexity: O(n). Errors: none.
func Chain() Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		for i := 1; i < g.Size(); i++ {
			g.AddEdge(i-1, i, cfg.weight)
		}

		return nil
	}
}

// Clique fully connects the first size vertices (both directions, no loops)
// and leaves the rest isolated. size must be in [0, n].
// Complexity: O(size²).
// Errors: ErrTooFewVertices if size is out of range.
func Clique(size int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if size < 0 || size > g.Size() {
			return fmt.Errorf("%s: size=%d not in [0,%d]: %w", methodClique, size, g.Size(), ErrTooFewVertices)
		}
		var u, v int
		for u = 0; u < size; u++ {
			for v = 0; v < size; v++ {
				if u != v {
					g.AddEdge(u, v, cfg.weight)
				}
			}
		}

		return nil
	}
}

// Grid arranges vertices row-major with the given width and links every
// vertex to its right and bottom neighbours. The last row may be partial.
// Complexity: O(n).
// Errors: ErrTooFewVertices if width < 1.
func Grid(width int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if width < minGridWidth {
			return fmt.Errorf("%s: width=%d < min=%d: %w", methodGrid, width, minGridWidth, ErrTooFewVertices)
		}
		n := g.Size()
		for u := 0; u < n; u++ {
			// right neighbour unless u ends its row
			if (u+1)%width != 0 && u+1 < n {
				g.AddEdge(u, u+1, cfg.weight)
			}
			if u+width < n {
				g.AddEdge(u, u+width, cfg.weight)
			}
		}

		return nil
	}
}
