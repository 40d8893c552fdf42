// SPDX-License-Identifier: MIT
// Package: kembed/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: randomness only via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG shared by all stochastic constructors of
// one BuildGraph call. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and fixtures to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLoops lets constructors emit self-loops (diagonal cells).
func WithLoops() BuilderOption {
	return func(c *builderConfig) {
		c.allowLoops = true
	}
}

// WithMaxMultiplicity sets the upper bound used by Multi (inclusive).
// Panics if max < 1.
func WithMaxMultiplicity(max int) BuilderOption {
	if max < 1 {
		panic("builder: WithMaxMultiplicity(max < 1)")
	}
	return func(c *builderConfig) {
		c.maxMult = max
	}
}

// WithWeight sets the multiplicity written by structured constructors
// (Chain, Clique, Grid) and by successful Sparse trials. Panics if w < 1.
func WithWeight(w int) BuilderOption {
	if w < 1 {
		panic("builder: WithWeight(w < 1)")
	}
	return func(c *builderConfig) {
		c.weight = w
	}
}
