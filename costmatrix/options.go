// SPDX-License-Identifier: MIT
// Package costmatrix: functional configuration for the point→matrix builder.
// This file defines:
//   - BuildOption / buildConfig (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package costmatrix

import "fmt"

// Defaults — single source of truth for zero-option behavior.
const (
	// DefaultIntegerCosts rounds every pairwise distance to the nearest
	// integer unit, the conventional cost model for planar tour instances.
	DefaultIntegerCosts = true

	// DefaultCostScale multiplies raw Euclidean distances before rounding.
	// 1.0 keeps distances in the coordinate unit.
	DefaultCostScale = 1.0
)

// buildConfig aggregates all knobs used by FromPoints.
// It is resolved once per call and passed by value (immutable to callers).
type buildConfig struct {
	integerCosts bool    // round each cost to the nearest integer unit
	scale        float64 // multiplier applied before rounding
}

// BuildOption mutates the builder configuration. Options are applied in
// order; later options override earlier ones.
type BuildOption func(*buildConfig)

// newBuildConfig resolves defaults then applies options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuildConfig(opts ...BuildOption) buildConfig {
	// Start with strict, deterministic defaults.
	cfg := buildConfig{
		integerCosts: DefaultIntegerCosts, // integer-unit costs
		scale:        DefaultCostScale,    // 1.0 — coordinate units
	}
	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithExactDistances disables integer rounding: costs keep the full
// floating-point Euclidean distance.
func WithExactDistances() BuildOption {
	return func(cfg *buildConfig) {
		cfg.integerCosts = false
	}
}

// WithCostScale multiplies every distance by s before rounding.
// Panics if s is not strictly positive (programmer error).
func WithCostScale(s float64) BuildOption {
	if s <= 0 {
		panic(fmt.Sprintf("costmatrix: WithCostScale(%g): scale must be > 0", s))
	}

	return func(cfg *buildConfig) {
		cfg.scale = s
	}
}
