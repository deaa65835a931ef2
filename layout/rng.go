// Package layout - RNG utilities for deterministic placement.
//
// Goals:
//   - Determinism: same seed ⇒ identical coordinates across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     concurrent Generate calls; derive one per call.
package layout

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed. The
// seed is mixed before use so that adjacent caller seeds (1,2,3,...) yield
// uncorrelated coordinate streams.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(mixSeed(s)))
}

// mixSeed applies the canonical SplitMix64 finalizer (Vigna 2014) to the
// caller seed.
//
// Complexity: O(1).
func mixSeed(parent int64) int64 {
	x := uint64(parent) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
