// SPDX-License-Identifier: MIT
// Package costmatrix: opt-in structural validators.
//
// The tour solver assumes — and does not verify — that its input matrix is
// symmetric with a +Inf diagonal and non-negative costs. These validators
// let callers surface violations before search instead of debugging a wrong
// bound afterwards. They are deterministic, side-effect free, and never
// called implicitly by the solver.

package costmatrix

import (
	"fmt"
	"math"
)

// DefaultSymTol is the structural tolerance for symmetry checks.
// It is deliberately tiny: integer-unit cost models are exactly symmetric,
// and float builders (WithExactDistances) stay well inside it.
const DefaultSymTol = 1e-12

// Table is the minimal read surface the validators need.
// *Dense satisfies it; so does any caller-supplied cost source.
type Table interface {
	// Size returns the matrix order.
	Size() int
	// Cost returns the edge cost from u to v; +Inf means "no direct edge".
	Cost(u, v int) float64
}

// ValidateSymmetric checks cost(u,v) == cost(v,u) within tol for all pairs.
// A negative tol falls back to DefaultSymTol. Cells that are both +Inf are
// symmetric by convention.
// Returns ErrNilMatrix or ErrAsymmetry (wrapped with the offending pair).
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Table, tol float64) error {
	if m == nil {
		return fmt.Errorf("ValidateSymmetric: %w", ErrNilMatrix)
	}
	if tol < 0 {
		tol = DefaultSymTol
	}

	var (
		n    = m.Size() // matrix order
		u, v int        // pair cursors
		a, b float64    // the mirrored cells
	)
	for u = 0; u < n; u++ {
		for v = u + 1; v < n; v++ {
			a, b = m.Cost(u, v), m.Cost(v, u)
			// Matching infinities are symmetric; one-sided infinity is not.
			if math.IsInf(a, 1) && math.IsInf(b, 1) {
				continue
			}
			if math.Abs(a-b) > tol {
				return fmt.Errorf("ValidateSymmetric: (%d,%d)=%g vs (%d,%d)=%g: %w",
					u, v, a, v, u, b, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateCosts checks the numeric policy over the whole table:
// +Inf diagonal, and off-diagonal cells that are non-negative and either
// finite or +Inf. NaN and -Inf fail anywhere.
// Returns ErrNilMatrix, ErrBadCost, ErrNegativeCost or ErrDiagonalWrite
// (the latter when a diagonal cell is not +Inf), wrapped with the cell.
// Complexity: O(n²) time, O(1) space.
func ValidateCosts(m Table) error {
	if m == nil {
		return fmt.Errorf("ValidateCosts: %w", ErrNilMatrix)
	}

	var (
		n    = m.Size() // matrix order
		u, v int        // cell cursors
		c    float64    // current cell
	)
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			c = m.Cost(u, v)
			// Diagonal must be exactly +Inf (no self-loops).
			if u == v {
				if !math.IsInf(c, 1) {
					return fmt.Errorf("ValidateCosts: (%d,%d)=%g: %w", u, v, c, ErrDiagonalWrite)
				}
				continue
			}
			// NaN and -Inf are never legal.
			if math.IsNaN(c) || math.IsInf(c, -1) {
				return fmt.Errorf("ValidateCosts: (%d,%d): %w", u, v, ErrBadCost)
			}
			// Negative costs break the admissibility of MST-style bounds.
			if c < 0 {
				return fmt.Errorf("ValidateCosts: (%d,%d)=%g: %w", u, v, c, ErrNegativeCost)
			}
		}
	}

	return nil
}
