// SPDX-License-Identifier: MIT
// Package costmatrix: Dense — the concrete square cost table.
// Dense is a row-major implementation storing elements in a flat slice for
// performance and cache friendliness. The diagonal is fixed to +Inf at
// construction (no self-loops) and cannot be overwritten.
//
// Numeric policy:
//   - Off-diagonal cells hold non-negative finite costs, or +Inf for
//     "no direct edge".
//   - NaN and -Inf are rejected on Set.
//   - Negative costs are rejected on Set (the cost model is non-negative).

package costmatrix

import (
	"fmt"
	"math"
	"strings"
)

// denseErrorf wraps an underlying sentinel with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major square matrix of float64 edge costs.
// n is the order; data holds n*n elements in row-major order.
// The zero value is unusable; construct via NewDense or FromPoints.
type Dense struct {
	n    int       // matrix order (number of cities)
	data []float64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense cost matrix.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): fill every cell with +Inf.
// A fresh table has no edges: unset off-diagonal cells read +Inf until a
// Set/SetSym write, and the diagonal stays +Inf forever (no self-loops).
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	// Validate order
	if n <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice and saturate with +Inf ("no direct edge")
	data := make([]float64, n*n)
	for i := range data {
		data[i] = math.Inf(1)
	}

	// Return initialized Dense
	return &Dense{n: n, data: data}, nil
}

// Size returns the matrix order (number of cities).
// Complexity: O(1).
func (m *Dense) Size() int {
	return m.n // return stored order
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < n and 0 ≤ col < n.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.n + col, nil
}

// At retrieves the cost at (row, col) with bounds checking.
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Cost retrieves the cost at (u, v) without bounds checking.
// It is the solver-facing hot-path accessor; callers guarantee indices are
// in [0, Size()). Diagonal cells read +Inf.
// Complexity: O(1).
func (m *Dense) Cost(u, v int) float64 {
	return m.data[u*m.n+v]
}

// Set assigns cost v at (row, col).
// Stage 1 (Validate): bounds check via indexOf; reject diagonal writes.
// Stage 2 (Validate): numeric policy — no NaN, no -Inf, no negatives.
// Stage 3 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// The diagonal is structural: +Inf forever.
	if row == col {
		return denseErrorf("Set", row, col, ErrDiagonalWrite)
	}
	// Reject NaN and -Inf; +Inf stays legal as "no direct edge".
	if math.IsNaN(v) || math.IsInf(v, -1) {
		return denseErrorf("Set", row, col, ErrBadCost)
	}
	// Reject negative costs (the cost model is non-negative).
	if v < 0 {
		return denseErrorf("Set", row, col, ErrNegativeCost)
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// SetSym assigns cost v to both (row, col) and (col, row) in one call,
// preserving symmetry by construction. Same validation as Set.
// Complexity: O(1).
func (m *Dense) SetSym(row, col int, v float64) error {
	if err := m.Set(row, col, v); err != nil {
		return err
	}

	return m.Set(col, row, v)
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(n²) time and memory.
func (m *Dense) Clone() *Dense {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{n: m.n, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Infinite cells print as "∞" to keep rows readable.
// Complexity: O(n²) for string construction.
func (m *Dense) String() string {
	var (
		b    strings.Builder // accumulated rows
		i, j int             // row / column cursors
		v    float64         // current cell
	)
	for i = 0; i < m.n; i++ { // iterate over rows
		b.WriteString("[")        // open row
		for j = 0; j < m.n; j++ { // iterate over columns
			// compute flat index directly for performance
			v = m.data[i*m.n+j]
			if math.IsInf(v, 1) {
				b.WriteString("∞")
			} else {
				fmt.Fprintf(&b, "%g", v)
			}
			if j < m.n-1 {
				b.WriteString(", ") // separate values with comma
			}
		}
		b.WriteString("]\n") // close row
	}

	return b.String()
}
