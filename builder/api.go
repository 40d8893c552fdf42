// SPDX-License-Identifier: MIT
// Package: kembed/builder
//
// api.go: public entry points.
//
// Design contract:
//   • One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg,
//     runs cons in order.
//   • Constructors only add edges to the n-vertex graph they receive.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/kembed/graph"
)

// Constructor adds edges to g using the resolved builderConfig. It must
// validate parameters before touching g and return sentinel errors only.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates an n-vertex graph, resolves the builder configuration
// from bopts and applies all constructors in order. Constructor errors are
// wrapped as "BuildGraph: %w" and returned immediately.
//
// Complexity: O(n²) allocation plus Σ constructor costs.
//
// Errors: ErrTooFewVertices for n < 0, ErrConstructFailed for a nil
// constructor, otherwise whatever the failing constructor returns.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("BuildGraph: n=%d: %w", n, ErrTooFewVertices)
	}
	g := graph.New(n)
	cfg := newBuilderConfig(bopts...)

	// constructors run in argument order against the same graph
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Kind names accepted by ByName.
const (
	KindEmpty  = "empty"
	KindChain  = "chain"
	KindClique = "clique"
	KindGrid   = "grid"
	KindDense  = "dense"
	KindSparse = "sparse"
	KindMulti  = "multi"
)

// ByName resolves a topology name to a Constructor. param is the clique size
// (clique), the grid width (grid) or the probability (sparse); other kinds
// ignore it.
//
// Errors: ErrUnknownKind.
func ByName(kind string, param float64) (Constructor, error) {
	switch strings.ToLower(kind) {
	case KindEmpty:
		return Empty(), nil
	case KindChain:
		return Chain(), nil
	case KindClique:
		return Clique(int(param)), nil
	case KindGrid:
		return Grid(int(param)), nil
	case KindDense:
		return Dense(), nil
	case KindSparse:
		return Sparse(param), nil
	case KindMulti:
		return Multi(), nil
	default:
		return nil, fmt.Errorf("ByName(%q): %w", kind, ErrUnknownKind)
	}
}
