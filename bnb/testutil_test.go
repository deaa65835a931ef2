// Package bnb_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and deterministic: fixed fixtures, a tiny SplitMix64 stream
// for synthetic instances, and brute-force comparators for small n.
package bnb_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/tourbound/bnb"
	"github.com/katalvlaran/tourbound/costmatrix"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// fpSlack absorbs float noise in ≤ / ≥ comparisons on synthetic integers.
	fpSlack = 1e-9

	// srcA is the canonical source city used across fixtures.
	srcA = "A"
)

// inf is a local shorthand for +Inf in fixture literals.
var inf = math.Inf(1)

// -----------------------------------------------------------------------------
// Minimal CostMatrix implementation for tests.
// -----------------------------------------------------------------------------

// testTable is a simple dense table backed by [][]float64.
type testTable struct{ a [][]float64 }

var _ bnb.CostMatrix = testTable{}

func (m testTable) Size() int             { return len(m.a) }
func (m testTable) Cost(u, v int) float64 { return m.a[u][v] }

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// mkIndex builds a city index or fails the test.
func mkIndex(t *testing.T, ids ...string) *costmatrix.Index {
	t.Helper()
	idx, err := costmatrix.NewIndex(ids)
	if err != nil {
		t.Fatalf("NewIndex(%v) failed: %v", ids, err)
	}

	return idx
}

// triangle is the 3-city fixture: AB=1, AC=2, BC=3. Both tours cost 6.
func triangle(t *testing.T) (bnb.CostMatrix, *costmatrix.Index) {
	t.Helper()
	m := testTable{a: [][]float64{
		{inf, 1, 2},
		{1, inf, 3},
		{2, 3, inf},
	}}

	return m, mkIndex(t, "A", "B", "C")
}

// fourCities is the canonical 4-city fixture: AB=10, AC=15, AD=20, BC=35,
// BD=25, CD=30. The optimal tour from A costs 80 via A→B→D→C→A.
func fourCities(t *testing.T) (bnb.CostMatrix, *costmatrix.Index) {
	t.Helper()
	m := testTable{a: [][]float64{
		{inf, 10, 15, 20},
		{10, inf, 35, 25},
		{15, 35, inf, 30},
		{20, 25, 30, inf},
	}}

	return m, mkIndex(t, "A", "B", "C", "D")
}

// splitmix advances a SplitMix64 stream; deterministic across platforms.
func splitmix(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB

	return z ^ (z >> 31)
}

// randTable builds a deterministic symmetric table with integer costs in
// [1, 99] driven by seed. The diagonal stays +Inf.
func randTable(n int, seed uint64) testTable {
	a := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
		a[i][i] = inf
	}
	state := seed
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w := float64(1 + splitmix(&state)%99)
			a[i][j], a[j][i] = w, w
		}
	}

	return testTable{a: a}
}

// letters returns the first n single-letter city identifiers "A", "B", ...
func letters(n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = string(rune('A' + i))
	}

	return out
}

// -----------------------------------------------------------------------------
// Brute-force comparators (small n only)
// -----------------------------------------------------------------------------

// minCompletion returns the cheapest cost of finishing the partial path:
// visit every unvisited city in some order, then return to path[0].
// Exhaustive over permutations; intended for n ≤ 8.
func minCompletion(m bnb.CostMatrix, path []int) float64 {
	var (
		n    = m.Size()
		used = make([]bool, n)
		best = math.Inf(1)
		left = n - len(path)
	)
	for _, v := range path {
		used[v] = true
	}

	var rec func(last int, left int, acc float64)
	rec = func(last int, left int, acc float64) {
		if left == 0 {
			if total := acc + m.Cost(last, path[0]); total < best {
				best = total
			}

			return
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			rec(v, left-1, acc+m.Cost(last, v))
			used[v] = false
		}
	}
	rec(path[len(path)-1], left, 0)

	return best
}

// bruteBest returns the optimal closed-tour cost from source src by
// exhaustive permutation search, and whether any finite tour exists.
func bruteBest(m bnb.CostMatrix, src int) (float64, bool) {
	best := minCompletion(m, []int{src})

	return best, !math.IsInf(best, 1)
}

// -----------------------------------------------------------------------------
// Trace inspection helpers
// -----------------------------------------------------------------------------

// mustErrIs fails unless errors.Is(err, want).
func mustErrIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("error mismatch: got %v, want %v", err, want)
	}
}

// signature renders one deterministic line per event (action + message);
// timestamps are deliberately excluded.
func signature(events []bnb.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = string(ev.Action) + "|" + ev.Message
	}

	return out
}

// pathIndices maps an event path back to matrix indices via the index.
// Closed paths (complete snapshots) keep their trailing source repeat.
func pathIndices(t *testing.T, idx *costmatrix.Index, ids []string) []int {
	t.Helper()
	out := make([]int, len(ids))
	for i, id := range ids {
		v, ok := idx.IndexOf(id)
		if !ok {
			t.Fatalf("event path holds unknown city %q", id)
		}
		out[i] = v
	}

	return out
}

// mustSolve runs Solve and fails the test on error.
func mustSolve(t *testing.T, m bnb.CostMatrix, idx *costmatrix.Index, source string) bnb.Result {
	t.Helper()
	res, err := bnb.Solve(m, idx, source, bnb.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	return res
}
