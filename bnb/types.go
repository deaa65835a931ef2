// Package bnb — public types, options, and sentinel errors.
//
// This file defines the full caller-facing surface of the solver: the
// CostMatrix read interface, Options/DefaultOptions, the Result/Tour pair,
// and every sentinel the package can return. Algorithms never panic on user
// input; they return these sentinels, wrapped with context at the boundary.

package bnb

import (
	"errors"

	"github.com/katalvlaran/tourbound/costmatrix"
)

// ErrNilMatrix is returned when the cost matrix argument is nil.
var ErrNilMatrix = errors.New("bnb: nil cost matrix")

// ErrNilIndex is returned when the city index argument is nil.
var ErrNilIndex = errors.New("bnb: nil city index")

// ErrDimensionMismatch is returned when the matrix order and the index
// length disagree: every city must own exactly one matrix row.
var ErrDimensionMismatch = errors.New("bnb: matrix order does not match index length")

// ErrSourceNotFound is the configuration error: the designated source
// identifier is not a key of the city index. Solving fails immediately,
// before any frontier work, with zero events produced.
var ErrSourceNotFound = errors.New("bnb: source city not found in index")

// ErrBadCost is returned when the matrix holds NaN or -Inf. +Inf is legal
// off-diagonal and means "no direct edge".
var ErrBadCost = errors.New("bnb: NaN or -Inf cost in matrix")

// ErrNegativeCost is returned when the matrix holds a negative cost; the
// MST-based bound is admissible only for non-negative costs.
var ErrNegativeCost = errors.New("bnb: negative cost in matrix")

// ErrBadOptions is returned when Options carry nonsensical values
// (currently: a negative Eps).
var ErrBadOptions = errors.New("bnb: invalid options")

// CostMatrix is the read surface the solver needs. *costmatrix.Dense
// satisfies it; any caller-supplied table with the same contract works too.
//
// Contract:
//   - Size() is the matrix order n.
//   - Cost(u, v) is the edge cost from u to v for u, v in [0, n).
//     +Inf means "no direct edge"; the diagonal must read +Inf.
//   - Costs must be symmetric: Cost(u, v) == Cost(v, u). The solver assumes
//     this and does not verify it — the MST bound's return-to-source term is
//     only admissible under symmetry. Callers wanting the check can run
//     costmatrix.ValidateSymmetric beforehand.
type CostMatrix interface {
	Size() int
	Cost(u, v int) float64
}

// Interface guard: the canonical matrix implementation satisfies CostMatrix.
var _ CostMatrix = (*costmatrix.Dense)(nil)

// DefaultEps is the default improvement tolerance: zero, meaning exact
// comparisons. Pruning keeps a node only when bound < incumbent strictly,
// and a completion must be strictly cheaper to replace the incumbent.
const DefaultEps = 0.0

// Options configures a solve. Obtain via DefaultOptions and adjust fields.
type Options struct {
	// Eps widens the pruning/acceptance margin: a node survives when
	// bound < incumbent-Eps and a completion improves when
	// total < incumbent-Eps. Must be >= 0; zero keeps comparisons exact.
	Eps float64
}

// DefaultOptions returns the canonical configuration: exact comparisons.
func DefaultOptions() Options {
	return Options{Eps: DefaultEps}
}

// Tour is a complete round trip: a closed cycle of city identifiers with
// Cities[0] == Cities[len-1] == source, and its total cost.
type Tour struct {
	Cities []string `json:"cities"`
	Cost   float64  `json:"cost"`
}

// Result is the outcome of one solve.
type Result struct {
	// Best is the optimal tour for the designated source, or nil when no
	// feasible tour exists (fewer than 2 cities, or no finite cycle).
	Best *Tour `json:"best"`

	// Events is the complete, ordered search trace: one record per
	// explore/prune/complete decision, sufficient to reconstruct the tree.
	Events []Event `json:"events"`

	// Explored counts the nodes dequeued from the frontier.
	Explored int `json:"explored"`
}
