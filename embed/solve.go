// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"

	"github.com/katalvlaran/kembed/graph"
)

// NewSolver returns the solver selected by WithAlgorithm (default Exact),
// carrying the logger from WithLogger.
//
// Errors: ErrUnsupportedAlgorithm.
func NewSolver(opts ...Option) (Solver, error) {
	o := newOptions(opts...)
	switch o.algo {
	case Exact:
		return &ExactSolver{logger: o.logger}, nil
	case Approximate:
		return &ApproximateSolver{logger: o.logger}, nil
	default:
		return nil, fmt.Errorf("NewSolver: %v: %w", o.algo, ErrUnsupportedAlgorithm)
	}
}

// Solve is the one-shot entry point: build the selected solver and run it.
//
// Contracts:
//   - g and h non-nil, h.Size() ≥ 1, k ≥ 1; violations return sentinels.
//   - g and h are not modified; Result.Graph is a new graph.
//
// Errors: ErrNilGraph, ErrEmptyPattern, ErrInvalidCopies, ErrUnsupportedAlgorithm.
func Solve(g, h *graph.Graph, k int, opts ...Option) (Result, error) {
	s, err := NewSolver(opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Solve(g, h, k)
}
