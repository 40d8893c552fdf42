// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"

	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/katalvlaran/kembed/graph"
)

// Verify checks that mapping is an embedding of h into g: one host vertex per
// pattern vertex, all in range, pairwise distinct, and every pattern edge
// weight dominated by the weight of its image (self-loops included).
//
// Errors: ErrNilGraph, ErrMappingLength, ErrMappingOutOfRange,
// ErrNotInjective, ErrWeightDeficit (first violation found, with context).
func Verify(g, h *graph.Graph, mapping []int) error {
	if g == nil || h == nil {
		return fmt.Errorf("Verify: %w", ErrNilGraph)
	}
	if len(mapping) != h.Size() {
		return fmt.Errorf("Verify: len=%d, |H|=%d: %w", len(mapping), h.Size(), ErrMappingLength)
	}
	used := hashmap.New() // host vertex → pattern vertex
	for u, x := range mapping {
		if x < 0 || x >= g.Size() {
			return fmt.Errorf("Verify: φ(%d)=%d not in [0,%d): %w", u, x, g.Size(), ErrMappingOutOfRange)
		}
		if prev, dup := used.Get(x); dup {
			return fmt.Errorf("Verify: φ(%v)=φ(%d)=%d: %w", prev, u, x, ErrNotInjective)
		}
		used.Put(x, u)
	}
	var u, v int
	for u = 0; u < h.Size(); u++ {
		for v = 0; v < h.Size(); v++ {
			if want, have := h.Edge(u, v), g.Edge(mapping[u], mapping[v]); have < want {
				return fmt.Errorf("Verify: edge %d→%d needs %d, host %d→%d has %d: %w",
					u, v, want, mapping[u], mapping[v], have, ErrWeightDeficit)
			}
		}
	}

	return nil
}

// VerifyResult checks that res holds exactly k mappings and that each one is
// an embedding of h into res.Graph.
func VerifyResult(h *graph.Graph, res Result, k int) error {
	if len(res.Mapping) != k {
		return fmt.Errorf("VerifyResult: %d copies, want %d: %w", len(res.Mapping), k, ErrMappingLength)
	}
	for i, phi := range res.Mapping {
		if err := Verify(res.Graph, h, phi); err != nil {
			return fmt.Errorf("VerifyResult: copy %d: %w", i, err)
		}
	}

	return nil
}
