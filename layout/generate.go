// SPDX-License-Identifier: MIT
// Package: tourbound/layout
//
// generate.go — deterministic city placement via rejection sampling.
//
// Design contract (strict):
//   - One public entry point: Generate(n, opts...). Resolves layoutConfig,
//     draws coordinates, enforces the spacing constraint, labels cities.
//   - Determinism: same n + options + seed ⇒ identical points, in order.
//   - Safety: never panics; returns sentinel errors (ErrBadCount,
//     ErrSpacingTooTight) wrapped with "Generate: ..." context.

package layout

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/tourbound/costmatrix"
)

// Generate places n cities uniformly at random inside the configured field,
// keeping every pair at least minSpacing apart. Each city is drawn up to
// maxAttempts times; exhausting the budget aborts the whole generation with
// ErrSpacingTooTight so callers never receive a partial layout.
//
// Complexity: O(n² · attempts) distance checks in the worst case; the
// constant is tiny for the intended n (a few dozen cities on a canvas).
func Generate(n int, opts ...Option) ([]costmatrix.Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("Generate: n=%d: %w", n, ErrBadCount)
	}
	cfg := newLayoutConfig(opts...)

	// Usable placement area after margins; jointly infeasible geometry is a
	// runtime failure, not an option panic, because the options are valid on
	// their own.
	var (
		usableW = cfg.width - 2*cfg.margin
		usableH = cfg.height - 2*cfg.margin
	)
	if usableW <= 0 || usableH <= 0 {
		return nil, fmt.Errorf("Generate: margins %.6g leave no usable area in %.6g×%.6g field: %w",
			cfg.margin, cfg.width, cfg.height, ErrSpacingTooTight)
	}

	var (
		pts  = make([]costmatrix.Point, 0, n)
		x, y float64
	)
	for i := 0; i < n; i++ {
		placed := false
		for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
			x = cfg.margin + cfg.rng.Float64()*usableW
			y = cfg.margin + cfg.rng.Float64()*usableH
			if clears(pts, x, y, cfg.minSpacing) {
				placed = true
				break
			}
		}
		if !placed {
			return nil, fmt.Errorf("Generate: city %d/%d unplaced after %d attempts at spacing %.6g: %w",
				i+1, n, cfg.maxAttempts, cfg.minSpacing, ErrSpacingTooTight)
		}
		pts = append(pts, costmatrix.Point{ID: cfg.idFn(i), X: x, Y: y})
	}

	return pts, nil
}

// clears reports whether (x,y) keeps at least d distance from every placed
// point. d ≤ 0 disables the check.
func clears(pts []costmatrix.Point, x, y, d float64) bool {
	if d <= 0 {
		return true
	}
	for i := range pts {
		if math.Hypot(pts[i].X-x, pts[i].Y-y) < d {
			return false
		}
	}

	return true
}

// AlphaID renders an index as a spreadsheet-style label:
// 0→"A", 25→"Z", 26→"AA", 27→"AB", ... Deterministic and allocation-light.
func AlphaID(i int) string {
	var buf [8]byte
	pos := len(buf)
	n := i
	for {
		pos--
		buf[pos] = byte('A' + n%26)
		n = n/26 - 1
		if n < 0 {
			break
		}
	}

	return string(buf[pos:])
}

// DecimalID renders an index as a base-10 string ("0","1","2",...).
func DecimalID(i int) string {
	return strconv.Itoa(i)
}
