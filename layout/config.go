// SPDX-License-Identifier: MIT
// Package: tourbound/layout
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • layoutConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newLayoutConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • field       = 800 × 600
//   • margin      = 40
//   • minSpacing  = 48
//   • maxAttempts = 256 per city
//   • idFn        = AlphaID ("A","B",...,"Z","AA",...)
//   • rng         = seeded from defaultSeed unless WithSeed/WithRand is given

package layout

import "math/rand"

// layoutConfig aggregates all knobs used by Generate.
// It is passed by VALUE to the placement loop (immutable to callers).
type layoutConfig struct {
	// Field geometry: points land inside [margin, width-margin] × [margin, height-margin].
	width  float64
	height float64
	margin float64

	// Minimum pairwise Euclidean distance between any two placed cities.
	minSpacing float64

	// Attempt budget per city before the sampler gives up.
	maxAttempts int

	// City ID strategy: index -> ID (deterministic).
	idFn func(int) string

	// RNG for coordinate draws; resolved from seed when nil.
	rng *rand.Rand
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultWidth       = 800.0 // field width
	defaultHeight      = 600.0 // field height
	defaultMargin      = 40.0  // border kept clear of cities
	defaultMinSpacing  = 48.0  // minimum pairwise distance
	defaultMaxAttempts = 256   // draws per city before giving up

	// defaultSeed is the fixed seed used when callers pass seed==0.
	// The value is arbitrary but stable to keep reproducible defaults.
	defaultSeed int64 = 1
)

// newLayoutConfig constructs a config with deterministic defaults and applies
// all options in order. The RNG is resolved last so that WithSeed and
// WithRand can be given in any position.
// Complexity: O(len(opts)) time, O(1) space.
func newLayoutConfig(opts ...Option) layoutConfig {
	cfg := layoutConfig{
		width:       defaultWidth,
		height:      defaultHeight,
		margin:      defaultMargin,
		minSpacing:  defaultMinSpacing,
		maxAttempts: defaultMaxAttempts,
		idFn:        AlphaID,
		rng:         nil, // resolved below
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve the RNG: absent an explicit source, derive one from defaultSeed.
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}
