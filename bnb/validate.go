// Package bnb - validation utilities for the solver entry points.
//
// This file contains small, tight helpers that:
//  1. Validate Options (tolerances).
//  2. Validate the matrix/index pair (presence, matching order).
//  3. Resolve the designated source identifier (the configuration error).
//  4. Prefetch the cost matrix into a dense buffer under strict sentinels.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case for the prefetch; no hidden allocations elsewhere.

package bnb

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tourbound/costmatrix"
)

// validateInputs verifies options + matrix/index pair and resolves the
// source index. It returns (n, sourceIdx) on success.
//
// Contract:
//   - m and index must be non-nil; index length must equal matrix order.
//   - source must be a key of the index: a miss is the configuration error
//     ErrSourceNotFound, surfaced before any frontier work.
//
// Complexity: O(1) beyond the map lookup.
func validateInputs(m CostMatrix, index *costmatrix.Index, source string, opts Options) (int, int, error) {
	// Stage 1: Options sanity. A negative epsilon would invert the
	// acceptance logic and break the optimality guarantee.
	if opts.Eps < 0 || math.IsNaN(opts.Eps) {
		return 0, 0, fmt.Errorf("Solve: Eps=%g: %w", opts.Eps, ErrBadOptions)
	}

	// Stage 2: Presence.
	if m == nil {
		return 0, 0, ErrNilMatrix
	}
	if index == nil {
		return 0, 0, ErrNilIndex
	}

	// Stage 3: Matching order - every city owns exactly one matrix row.
	n := m.Size()
	if n != index.Len() {
		return 0, 0, fmt.Errorf("Solve: matrix %d×%d vs index %d: %w", n, n, index.Len(), ErrDimensionMismatch)
	}

	// Stage 4: Source resolution (the configuration error).
	src, ok := index.IndexOf(source)
	if !ok {
		return 0, 0, fmt.Errorf("Solve: %q: %w", source, ErrSourceNotFound)
	}

	return n, src, nil
}

// prefetch loads the matrix into the engine's dense buffer and applies
// strict sentinels. NaN and -Inf are rejected (ErrBadCost); negative costs
// are rejected (ErrNegativeCost); +Inf is allowed and represents a missing
// edge, including the whole diagonal.
//
// Complexity: O(n²) time, O(n²) space for the buffer.
func (e *engine) prefetch(m CostMatrix) error {
	var (
		i, j int
		x    float64
	)
	e.w = make([]float64, e.n*e.n)
	for i = 0; i < e.n; i++ {
		for j = 0; j < e.n; j++ {
			x = m.Cost(i, j)
			if math.IsNaN(x) || math.IsInf(x, -1) {
				return fmt.Errorf("Solve: cost(%d,%d): %w", i, j, ErrBadCost)
			}
			if x < 0 {
				return fmt.Errorf("Solve: cost(%d,%d)=%g: %w", i, j, x, ErrNegativeCost)
			}
			e.w[i*e.n+j] = x
		}
	}

	return nil
}
