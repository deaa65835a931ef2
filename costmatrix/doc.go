// Package costmatrix builds and validates the inputs of a tour search:
// a dense symmetric cost matrix and a stable city-index mapping.
//
// The costmatrix package provides:
//
//   - Dense, a row-major square cost table with an infinite diagonal
//     (no self-loops) and O(1) cost lookups.
//   - Index, an immutable bijection between opaque city identifiers and
//     matrix indices, built once and never mutated during a solve.
//   - FromPoints, the Euclidean distance builder that turns planar points
//     into a matched (Dense, Index) pair, rounding costs to the integer
//     unit by default.
//   - ValidateSymmetric and ValidateCosts, opt-in structural checks for
//     callers that want violations surfaced before search.
//
// Matrices are best for dense, complete instances where O(n²) memory is
// acceptable; that is exactly the regime of an exact tour solver.
//
// See the examples in this package and bnb for usage patterns.
package costmatrix
