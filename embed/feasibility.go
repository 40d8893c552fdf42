// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"

	"github.com/katalvlaran/kembed/combinat"
	"github.com/katalvlaran/kembed/graph"
)

// MissingVertices returns the smallest m ≥ 0 such that
// C(hostSize+m, patternSize) ≥ copies, i.e. the number of vertices to append
// so the host has at least `copies` distinct size-|H| subsets.
//
// C(n, p) is non-decreasing in n and unbounded for p ≥ 1, so the forward
// search terminates.
//
// Errors: ErrInvalidSize, ErrEmptyPattern, ErrInvalidCopies.
func MissingVertices(hostSize, patternSize, copies int) (int, error) {
	switch {
	case hostSize < 0:
		return 0, fmt.Errorf("MissingVertices: host size %d: %w", hostSize, ErrInvalidSize)
	case patternSize < 1:
		return 0, fmt.Errorf("MissingVertices: pattern size %d: %w", patternSize, ErrEmptyPattern)
	case copies < 1:
		return 0, fmt.Errorf("MissingVertices: k=%d: %w", copies, ErrInvalidCopies)
	}

	m := 0
	for combinat.Binomial(hostSize+m, patternSize) < copies {
		m++
	}

	return m, nil
}

// prepare validates solver inputs and returns the extended host together
// with the number of appended vertices. g is never modified.
func prepare(method string, g, h *graph.Graph, k int) (*graph.Graph, int, error) {
	if g == nil || h == nil {
		return nil, 0, fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if h.Size() == 0 {
		return nil, 0, fmt.Errorf("%s: %w", method, ErrEmptyPattern)
	}
	if k < 1 {
		return nil, 0, fmt.Errorf("%s: k=%d: %w", method, k, ErrInvalidCopies)
	}
	missing, err := MissingVertices(g.Size(), h.Size(), k)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", method, err)
	}

	return g.Extend(g.Size() + missing), missing, nil
}
