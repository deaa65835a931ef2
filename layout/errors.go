// SPDX-License-Identifier: MIT
// Package: tourbound/layout
//
// errors.go — sentinel errors for the layout package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Generate attaches context via %w; option constructors panic on
//     meaningless values instead of returning errors.

package layout

import "errors"

// ErrBadCount indicates that the requested number of cities is smaller than
// the allowed minimum (n ≥ 1).
// Usage: if errors.Is(err, ErrBadCount) { /* fix n */ }.
var ErrBadCount = errors.New("layout: city count too small")

// ErrSpacingTooTight indicates that rejection sampling exhausted its attempt
// budget: the field cannot hold n cities at the configured minimum spacing
// (or the margins leave no usable area at all).
// Usage: if errors.Is(err, ErrSpacingTooTight) { /* enlarge field or relax spacing */ }.
var ErrSpacingTooTight = errors.New("layout: spacing constraint unsatisfiable")
