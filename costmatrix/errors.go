// SPDX-License-Identifier: MIT
// Package costmatrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// costmatrix package. All constructors and validators MUST return these
// sentinels and tests MUST check them via errors.Is. No function panics on
// user-triggered error conditions; panics are reserved for programmer errors
// in option constructors.

package costmatrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "costmatrix: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers still match
// with errors.Is.

var (
	// ErrBadShape is returned when a requested matrix order is invalid (n <= 0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("costmatrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("costmatrix: index out of range")

	// ErrDiagonalWrite signals an attempt to assign a finite cost to a
	// diagonal cell. Diagonal entries are +Inf by definition (no self-loops).
	ErrDiagonalWrite = errors.New("costmatrix: diagonal is fixed to +Inf")

	// ErrNegativeCost signals a negative edge cost where the cost model
	// requires non-negative values.
	ErrNegativeCost = errors.New("costmatrix: negative cost")

	// ErrBadCost signals a NaN or -Inf value where non-negative
	// finite-or-+Inf costs are required. +Inf is legal off-diagonal and
	// means "no direct edge".
	ErrBadCost = errors.New("costmatrix: NaN or -Inf cost")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured tolerance.
	ErrAsymmetry = errors.New("costmatrix: matrix is not symmetric within tol")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("costmatrix: nil matrix")

	// ErrEmptyID indicates an empty city identifier in an Index or point set.
	ErrEmptyID = errors.New("costmatrix: empty city id")

	// ErrDuplicateID indicates a repeated city identifier where a bijection
	// is required.
	ErrDuplicateID = errors.New("costmatrix: duplicate city id")

	// ErrUnknownID indicates that a referenced city identifier is not present
	// in the Index.
	ErrUnknownID = errors.New("costmatrix: unknown city id")

	// ErrNoPoints is returned when a builder receives an empty point set.
	ErrNoPoints = errors.New("costmatrix: no points")

	// ErrBadCoordinate signals a NaN or Inf coordinate in a point set.
	ErrBadCoordinate = errors.New("costmatrix: NaN or Inf coordinate")
)
