// SPDX-License-Identifier: MIT
// Package layout generates deterministic city placements for tour instances.
//
// Generate draws n cities uniformly inside a bounded field, keeps every pair
// at least a configurable distance apart via rejection sampling, and labels
// them with a pluggable ID scheme (spreadsheet-style letters by default,
// decimals on request). The same seed and options always reproduce the same
// layout, which keeps downstream cost matrices and solver traces replayable.
//
// The package never panics at runtime; misconfigured option values panic in
// the option constructors themselves, and Generate reports unsatisfiable
// geometry with ErrSpacingTooTight.
//
// Typical use:
//
//	pts, err := layout.Generate(8, layout.WithSeed(42))
//	if err != nil { ... }
//	m, idx, err := costmatrix.FromPoints(pts)
package layout
