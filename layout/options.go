// SPDX-License-Identifier: MIT
// Package: tourbound/layout
//
// options.go — functional options for the layout package.
//
// Contract (strict):
//   • Options are functional (type Option func(*layoutConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Generate itself never panics, it returns sentinel errors.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through layoutConfig.

package layout

import "math/rand"

// Option customizes Generate by mutating a layoutConfig instance before
// placement begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*layoutConfig)

// WithBounds sets the field size. Panics unless both sides are positive.
// Complexity: O(1) time, O(1) space.
func WithBounds(width, height float64) Option {
	if width <= 0 || height <= 0 {
		panic("layout: WithBounds(non-positive side)")
	}
	return func(c *layoutConfig) {
		c.width, c.height = width, height
	}
}

// WithMargin sets the clear border kept between cities and the field edge.
// Panics on negative values; 0 disables the margin.
// Complexity: O(1) time, O(1) space.
func WithMargin(m float64) Option {
	if m < 0 {
		panic("layout: WithMargin(m<0)")
	}
	return func(c *layoutConfig) {
		c.margin = m
	}
}

// WithMinSpacing sets the minimum pairwise distance between cities.
// Panics on negative values; 0 disables the spacing constraint.
// Complexity: O(1) time, O(1) space.
func WithMinSpacing(d float64) Option {
	if d < 0 {
		panic("layout: WithMinSpacing(d<0)")
	}
	return func(c *layoutConfig) {
		c.minSpacing = d
	}
}

// WithMaxAttempts sets the per-city draw budget for rejection sampling.
// Panics unless at least one attempt is allowed.
// Complexity: O(1) time, O(1) space.
func WithMaxAttempts(k int) Option {
	if k < 1 {
		panic("layout: WithMaxAttempts(k<1)")
	}
	return func(c *layoutConfig) {
		c.maxAttempts = k
	}
}

// WithIDScheme sets the deterministic city ID generator: idx -> string.
// Panics on nil. AlphaID and DecimalID are the two stock schemes.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("layout: WithIDScheme(nil)")
	}
	return func(c *layoutConfig) {
		c.idFn = fn
	}
}

// WithSeed creates a deterministic RNG from the given seed.
// Policy: seed==0 ⇒ the fixed default seed; every run stays reproducible.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *layoutConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG for coordinate draws.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("layout: WithRand(nil)")
	}
	return func(c *layoutConfig) {
		c.rng = r
	}
}
