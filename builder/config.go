// SPDX-License-Identifier: MIT
// Package: kembed/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng        = nil   (pure/deterministic unless seeded)
//   • allowLoops = false (diagonal skipped)
//   • maxMult    = 3     (Multi samples 0..3)
//   • weight     = 1     (structured edges)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng        *rand.Rand
	allowLoops bool
	maxMult    int
	weight     int
}

const (
	defaultMaxMult = 3
	defaultWeight  = 1
)

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		maxMult: defaultMaxMult,
		weight:  defaultWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// admissible reports whether the ordered pair (u,v) may carry edges.
func (c builderConfig) admissible(u, v int) bool {
	return u != v || c.allowLoops
}
