// SPDX-License-Identifier: MIT
// Package costmatrix: FromPoints — the Euclidean distance builder.
// Turns a set of labelled planar points into a matched (Dense, Index) pair:
// the matrix order equals the point order, costs are pairwise Euclidean
// distances (rounded to the integer unit by default), and the diagonal stays
// +Inf.
//
// Contracts:
//   - Point IDs must be non-empty and unique (bijection requirement).
//   - Coordinates must be finite (NaN/Inf rejected).
//   - Symmetry holds by construction: cost(u,v) == cost(v,u).

package costmatrix

import (
	"fmt"
	"math"
)

// Point is one labelled city position on the plane.
type Point struct {
	ID string  // opaque, stable city identifier
	X  float64 // horizontal coordinate
	Y  float64 // vertical coordinate
}

// FromPoints builds the cost matrix and city index for the given points.
// Stage 1 (Validate): non-empty set, finite coordinates, valid IDs (via NewIndex).
// Stage 2 (Prepare): allocate the n×n Dense.
// Stage 3 (Execute): fill pairwise Euclidean costs, honoring the rounding policy.
// Complexity: O(n²) time, O(n²) space.
func FromPoints(pts []Point, opts ...BuildOption) (*Dense, *Index, error) {
	// Validate the set is non-empty before any allocation.
	if len(pts) == 0 {
		return nil, nil, fmt.Errorf("FromPoints: %w", ErrNoPoints)
	}

	// Resolve builder configuration (deterministic defaults, last-wins).
	cfg := newBuildConfig(opts...)

	var (
		n   = len(pts) // matrix order
		i   int        // row cursor
		j   int        // column cursor
		d   float64    // current pairwise distance
		err error      // staged validation error
	)

	// Validate coordinates early: one bad point fails the whole build.
	for i = 0; i < n; i++ {
		if badCoord(pts[i].X) || badCoord(pts[i].Y) {
			return nil, nil, fmt.Errorf("FromPoints: point %q: %w", pts[i].ID, ErrBadCoordinate)
		}
	}

	// Build the bijection; NewIndex enforces non-empty unique IDs.
	ids := make([]string, n)
	for i = 0; i < n; i++ {
		ids[i] = pts[i].ID
	}
	idx, err := NewIndex(ids)
	if err != nil {
		return nil, nil, fmt.Errorf("FromPoints: %w", err)
	}

	// Allocate the matrix (diagonal pinned to +Inf by NewDense).
	m, err := NewDense(n)
	if err != nil {
		return nil, nil, fmt.Errorf("FromPoints: %w", err)
	}

	// Fill the upper triangle and mirror; symmetry holds by construction.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = euclid(pts[i], pts[j]) * cfg.scale
			if cfg.integerCosts {
				d = math.Round(d)
			}
			// Set validates the numeric policy; distances are always legal here.
			if err = m.SetSym(i, j, d); err != nil {
				return nil, nil, fmt.Errorf("FromPoints: %w", err)
			}
		}
	}

	return m, idx, nil
}

// euclid returns the straight-line distance between two points.
// Complexity: O(1).
func euclid(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// badCoord reports whether a coordinate violates the finite-value policy.
func badCoord(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
