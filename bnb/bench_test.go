// Package bnb_test — benchmarks for the exact Branch-and-Bound solver.
//
// Policy:
//   - Deterministic inputs (rippled circles, seeded random tables) built
//     outside the timer; only Solve is measured.
//   - Sizes tuned so exact search finishes comfortably on CI: geometric
//     instances prune hard, dense random tables are kept one notch smaller.
package bnb_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tourbound/bnb"
	"github.com/katalvlaran/tourbound/costmatrix"
)

// sink defeats dead-code elimination of the measured call.
var sinkResult bnb.Result

// circleInstance builds a deterministic rippled-circle instance of n cities.
// Radius sits near 100 so integer rounding keeps distances well separated.
func circleInstance(b *testing.B, n int) (*costmatrix.Dense, *costmatrix.Index) {
	b.Helper()
	var (
		pts = make([]costmatrix.Point, n)
		th  float64 // angle
		r   float64 // radius with deterministic ripple
	)
	for i := 0; i < n; i++ {
		th = 2.0 * math.Pi * float64(i) / float64(n)
		r = 100.0 + 2.0*float64((i*5)%7)
		pts[i] = costmatrix.Point{
			ID: string(rune('A' + i)),
			X:  r * math.Cos(th),
			Y:  r * math.Sin(th),
		}
	}
	m, idx, err := costmatrix.FromPoints(pts)
	if err != nil {
		b.Fatalf("FromPoints failed: %v", err)
	}

	return m, idx
}

// BenchmarkSolve_Circle_n9 measures the full solve, trace included, on a
// 9-city geometric instance.
func BenchmarkSolve_Circle_n9(b *testing.B) {
	m, idx := circleInstance(b, 9)

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		res, err := bnb.Solve(m, idx, srcA, bnb.DefaultOptions())
		if err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
		sinkResult = res
	}
}

// BenchmarkSolve_Circle_n11 is the same geometry one notch larger; the MST
// bound keeps the frontier small on near-ring metrics.
func BenchmarkSolve_Circle_n11(b *testing.B) {
	m, idx := circleInstance(b, 11)

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		res, err := bnb.Solve(m, idx, srcA, bnb.DefaultOptions())
		if err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
		sinkResult = res
	}
}

// BenchmarkSolve_Random_n8 measures the solver on a seeded dense table with
// no geometric structure, the adversarial case for the bound.
func BenchmarkSolve_Random_n8(b *testing.B) {
	var (
		m   = randTable(8, 42)
		ids = letters(8)
	)
	idx, err := costmatrix.NewIndex(ids)
	if err != nil {
		b.Fatalf("NewIndex failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		res, solveErr := bnb.Solve(m, idx, srcA, bnb.DefaultOptions())
		if solveErr != nil {
			b.Fatalf("Solve failed: %v", solveErr)
		}
		sinkResult = res
	}
}
