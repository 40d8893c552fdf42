// SPDX-License-Identifier: MIT

package embed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/kembed/graph"
	"github.com/rs/zerolog"
)

// Sentinel errors. Callers branch with errors.Is; context is attached with %w.
var (
	// ErrNilGraph indicates a nil host or pattern graph.
	ErrNilGraph = errors.New("embed: nil graph")

	// ErrEmptyPattern indicates a pattern graph without vertices.
	ErrEmptyPattern = errors.New("embed: pattern graph has no vertices")

	// ErrInvalidCopies indicates k < 1.
	ErrInvalidCopies = errors.New("embed: number of copies must be ≥ 1")

	// ErrInvalidSize indicates a negative host size passed to MissingVertices.
	ErrInvalidSize = errors.New("embed: negative host size")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("embed: unsupported algorithm")

	// ErrMappingLength indicates a mapping whose length differs from |H|, or a
	// result with the wrong number of copies.
	ErrMappingLength = errors.New("embed: mapping length mismatch")

	// ErrMappingOutOfRange indicates a mapped host vertex outside [0,|G|).
	ErrMappingOutOfRange = errors.New("embed: mapped vertex out of range")

	// ErrNotInjective indicates two pattern vertices mapped to one host vertex.
	ErrNotInjective = errors.New("embed: mapping is not injective")

	// ErrWeightDeficit indicates a pattern edge heavier than its image.
	ErrWeightDeficit = errors.New("embed: host edge weight below pattern edge weight")
)

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// Exact runs the exhaustive pruned search (ExactSolver).
	Exact Algorithm = iota

	// Approximate runs the single-pass degree-aligned greedy (ApproximateSolver).
	Approximate
)

// String returns the canonical name used by ParseAlgorithm and the CLI.
func (a Algorithm) String() string {
	switch a {
	case Exact:
		return "exact"
	case Approximate:
		return "approximate"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "exact", "approximate" or "approx" (case-insensitive)
// to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exact":
		return Exact, nil
	case "approximate", "approx":
		return Approximate, nil
	default:
		return 0, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnsupportedAlgorithm)
	}
}

// Stats counts the work a solver performed.
type Stats struct {
	// Candidates is the number of assignments started (exact) or copies laid
	// down (approximate).
	Candidates int

	// Pruned is the number of assignments abandoned once their running cost
	// reached the best known cost.
	Pruned int

	// Improvements is the number of times the best known cost decreased.
	Improvements int
}

// Result is the outcome of a solve.
type Result struct {
	// Graph is the extended host G′; it never aliases the caller's G.
	Graph *graph.Graph

	// Cost is the total number of edits: MissingVertices plus edge increments.
	Cost int

	// MissingVertices is the number of vertices appended to G.
	MissingVertices int

	// Mapping[i][u] is the host vertex that hosts pattern vertex u in copy i;
	// len(Mapping) == k and len(Mapping[i]) == |H|.
	Mapping [][]int

	// Stats describes the search effort.
	Stats Stats
}

// EdgeAdditions returns the number of unit edge increments in the result.
func (r Result) EdgeAdditions() int { return r.Cost - r.MissingVertices }

// Solver is implemented by ExactSolver and ApproximateSolver.
type Solver interface {
	Solve(g, h *graph.Graph, k int) (Result, error)
}

// Option configures solver construction.
type Option func(*options)

// options is the resolved configuration; zero value is never used directly.
type options struct {
	algo   Algorithm
	logger zerolog.Logger
}

// WithAlgorithm selects the solver used by Solve. Default: Exact.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) { o.algo = a }
}

// WithLogger attaches a zerolog logger; solvers emit Debug events only.
// Default: zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// newOptions applies opts in order over the defaults.
func newOptions(opts ...Option) options {
	o := options{algo: Exact, logger: zerolog.Nop()}
	for _, fn := range opts {
		if fn == nil {
			panic("embed: nil Option")
		}
		fn(&o)
	}

	return o
}
