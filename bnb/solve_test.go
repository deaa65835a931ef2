// Package bnb_test validates the exact best-first solver (Solve/SolveContext).
// Focus:
//  1. Strict sentinels on malformed inputs (nil args, mismatch, NaN, negative,
//     unknown source, bad options).
//  2. Degenerate inputs: n < 2 declines quickly with zero events.
//  3. Hand-checked golden traces on tiny instances (n=3, n=4).
//  4. Optimality vs exhaustive permutation search on synthetic instances.
//  5. Infinite costs: disconnected instances end as "no tour" without error.
//  6. Determinism and cooperative cancellation.
package bnb_test

import (
	"context"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/tourbound/bnb"
	"github.com/katalvlaran/tourbound/costmatrix"
)

// ---------------------------
// 1) Strict sentinels tests.
// ---------------------------

func TestSolve_Errors_StrictSentinels(t *testing.T) {
	good, idx := fourCities(t)

	// Nil matrix → ErrNilMatrix.
	_, err := bnb.Solve(nil, idx, srcA, bnb.DefaultOptions())
	mustErrIs(t, err, bnb.ErrNilMatrix)

	// Nil index → ErrNilIndex.
	_, err = bnb.Solve(good, nil, srcA, bnb.DefaultOptions())
	mustErrIs(t, err, bnb.ErrNilIndex)

	// Order mismatch (4×4 matrix vs 2-city index) → ErrDimensionMismatch.
	_, err = bnb.Solve(good, mkIndex(t, "A", "B"), srcA, bnb.DefaultOptions())
	mustErrIs(t, err, bnb.ErrDimensionMismatch)

	// NaN cost → ErrBadCost.
	nan := testTable{a: [][]float64{
		{inf, math.NaN()},
		{1, inf},
	}}
	_, err = bnb.Solve(nan, mkIndex(t, "A", "B"), srcA, bnb.DefaultOptions())
	mustErrIs(t, err, bnb.ErrBadCost)

	// Negative cost → ErrNegativeCost.
	neg := testTable{a: [][]float64{
		{inf, -1},
		{-1, inf},
	}}
	_, err = bnb.Solve(neg, mkIndex(t, "A", "B"), srcA, bnb.DefaultOptions())
	mustErrIs(t, err, bnb.ErrNegativeCost)

	// Negative epsilon → ErrBadOptions.
	_, err = bnb.Solve(good, idx, srcA, bnb.Options{Eps: -1e-9})
	mustErrIs(t, err, bnb.ErrBadOptions)
}

func TestSolve_SourceNotFound_ZeroEvents(t *testing.T) {
	m, idx := fourCities(t)

	// The configuration error fires before any frontier work: zero events.
	res, err := bnb.Solve(m, idx, "Z", bnb.DefaultOptions())
	mustErrIs(t, err, bnb.ErrSourceNotFound)
	if len(res.Events) != 0 || res.Explored != 0 || res.Best != nil {
		t.Fatalf("configuration error must leave an empty result, got %+v", res)
	}
}

// ---------------------------
// 2) Degenerate inputs.
// ---------------------------

func TestSolve_SingleCity_NoTourNoEvents(t *testing.T) {
	one := testTable{a: [][]float64{{inf}}}
	res, err := bnb.Solve(one, mkIndex(t, "A"), srcA, bnb.DefaultOptions())
	if err != nil {
		t.Fatalf("single city must not be an error, got %v", err)
	}
	if res.Best != nil || len(res.Events) != 0 || res.Explored != 0 {
		t.Fatalf("single city must decline with an empty result, got %+v", res)
	}
}

func TestSolve_TwoCities_TrivialRoundTrip(t *testing.T) {
	m := testTable{a: [][]float64{
		{inf, 7},
		{7, inf},
	}}
	res := mustSolve(t, m, mkIndex(t, "A", "B"), srcA)

	if res.Best == nil {
		t.Fatal("two connected cities must yield a tour")
	}
	if res.Best.Cost != 14 {
		t.Fatalf("tour cost: got %v, want 14", res.Best.Cost)
	}
	if !slices.Equal(res.Best.Cities, []string{"A", "B", "A"}) {
		t.Fatalf("tour: got %v, want [A B A]", res.Best.Cities)
	}
	// Trace: root explore, child explore, improving complete.
	want := []bnb.Action{bnb.ActionExplore, bnb.ActionExplore, bnb.ActionComplete}
	if got := actionsOf(res.Events); !slices.Equal(got, want) {
		t.Fatalf("actions: got %v, want %v", got, want)
	}
	if res.Explored != 2 {
		t.Fatalf("explored: got %d, want 2", res.Explored)
	}
}

// actionsOf projects the action column of a trace.
func actionsOf(events []bnb.Event) []bnb.Action {
	out := make([]bnb.Action, len(events))
	for i, ev := range events {
		out[i] = ev.Action
	}

	return out
}

// ---------------------------
// 3) Golden traces (hand-checked).
// ---------------------------

// TestSolve_Triangle_GoldenTrace pins the full decision sequence on the
// 3-city fixture. Hand derivation: root bound 5; both level-2 children
// bound 6; the first completion (A→B→C→A, cost 6) improves, the mirror
// (A→C→B→A, also 6) is pruned at dequeue because 6 ≥ 6.
func TestSolve_Triangle_GoldenTrace(t *testing.T) {
	m, idx := triangle(t)
	res := mustSolve(t, m, idx, srcA)

	if res.Best == nil || res.Best.Cost != 6 {
		t.Fatalf("best: got %+v, want cost 6", res.Best)
	}
	if !slices.Equal(res.Best.Cities, []string{"A", "B", "C", "A"}) {
		t.Fatalf("tour: got %v, want [A B C A]", res.Best.Cities)
	}
	if res.Explored != 5 {
		t.Fatalf("explored: got %d, want 5", res.Explored)
	}

	type step struct {
		action bnb.Action
		id     int
		parent int
		level  int
		bound  float64
	}
	want := []step{
		{bnb.ActionExplore, 0, bnb.NoParent, 1, 5}, // root [A]
		{bnb.ActionExplore, 1, 0, 2, 6},            // [A B]
		{bnb.ActionExplore, 2, 0, 2, 6},            // [A C]
		{bnb.ActionExplore, 3, 1, 3, 6},            // [A B C]
		{bnb.ActionExplore, 4, 2, 3, 6},            // [A C B]
		{bnb.ActionComplete, 3, 1, 3, 6},           // A→B→C→A improves ∞
		{bnb.ActionPrune, 4, 2, 3, 6},              // mirror: 6 ≥ 6
	}
	if len(res.Events) != len(want) {
		t.Fatalf("event count: got %d, want %d", len(res.Events), len(want))
	}
	for i, w := range want {
		ev := res.Events[i]
		if ev.Action != w.action || ev.Node.ID != w.id || ev.Node.ParentID != w.parent {
			t.Fatalf("event %d: got (%s id=%d parent=%d), want (%s id=%d parent=%d)",
				i, ev.Action, ev.Node.ID, ev.Node.ParentID, w.action, w.id, w.parent)
		}
		if ev.Node.Level != w.level || ev.Node.LowerBound != w.bound {
			t.Fatalf("event %d: got (level=%d bound=%v), want (level=%d bound=%v)",
				i, ev.Node.Level, ev.Node.LowerBound, w.level, w.bound)
		}
	}

	// The improving completion carries the closed path and the true cost.
	done := res.Events[5]
	if !slices.Equal(done.Node.Path, []string{"A", "B", "C", "A"}) || done.Node.Cost != 6 {
		t.Fatalf("complete snapshot: got %v cost=%v", done.Node.Path, done.Node.Cost)
	}
	// The pruned mirror keeps its open path and the pruned flag.
	cut := res.Events[6]
	if !cut.Node.IsPruned || !slices.Equal(cut.Node.Path, []string{"A", "C", "B"}) {
		t.Fatalf("prune snapshot: got %+v", cut.Node)
	}
}

// TestSolve_FourCities_GoldenTrace pins the canonical 4-city scenario:
// optimal cost 80 via A→B→D→C→A. Hand derivation of the pop order
// (bound, then insertion): A; A→B; A→C; A→B→D; A→C→D; A→B→D→C completes
// at 80; everything still queued (bounds 80, 90, 95, 95) is then pruned.
func TestSolve_FourCities_GoldenTrace(t *testing.T) {
	m, idx := fourCities(t)
	res := mustSolve(t, m, idx, srcA)

	if res.Best == nil || res.Best.Cost != 80 {
		t.Fatalf("best: got %+v, want cost 80", res.Best)
	}
	if !slices.Equal(res.Best.Cities, []string{"A", "B", "D", "C", "A"}) {
		t.Fatalf("tour: got %v, want [A B D C A]", res.Best.Cities)
	}
	if res.Explored != 10 {
		t.Fatalf("explored: got %d, want 10", res.Explored)
	}

	want := []bnb.Action{
		bnb.ActionExplore,  // id 0: [A], bound 75
		bnb.ActionExplore,  // id 1: [A B] 80
		bnb.ActionExplore,  // id 2: [A C] 80
		bnb.ActionExplore,  // id 3: [A D] 90
		bnb.ActionExplore,  // id 4: [A B C] 95
		bnb.ActionExplore,  // id 5: [A B D] 80
		bnb.ActionExplore,  // id 6: [A C B] 95
		bnb.ActionExplore,  // id 7: [A C D] 80
		bnb.ActionExplore,  // id 8: [A B D C] 80
		bnb.ActionExplore,  // id 9: [A C D B] 80
		bnb.ActionComplete, // id 8: A→B→D→C→A cost 80
		bnb.ActionPrune,    // id 9: 80 ≥ 80
		bnb.ActionPrune,    // id 3: 90 ≥ 80
		bnb.ActionPrune,    // id 4: 95 ≥ 80
		bnb.ActionPrune,    // id 6: 95 ≥ 80
	}
	if got := actionsOf(res.Events); !slices.Equal(got, want) {
		t.Fatalf("actions:\n got %v\nwant %v", got, want)
	}

	// Bounds drive the pop order; IDs confirm which node each record is.
	bounds := []float64{75, 80, 80, 90, 95, 80, 95, 80, 80, 80, 80, 80, 90, 95, 95}
	ids := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 8, 9, 3, 4, 6}
	for i := range want {
		if res.Events[i].Node.LowerBound != bounds[i] {
			t.Fatalf("event %d bound: got %v, want %v", i, res.Events[i].Node.LowerBound, bounds[i])
		}
		if res.Events[i].Node.ID != ids[i] {
			t.Fatalf("event %d id: got %d, want %d", i, res.Events[i].Node.ID, ids[i])
		}
	}
}

// ---------------------------
// 4) Optimality vs brute force.
// ---------------------------

func TestSolve_Optimality_AgainstBruteForce(t *testing.T) {
	var seed uint64
	for _, n := range []int{4, 5, 6, 7, 8} {
		for rep := 0; rep < 4; rep++ {
			seed++
			m := randTable(n, seed)
			idx := mkIndex(t, letters(n)...)
			res := mustSolve(t, m, idx, srcA)

			want, feasible := bruteBest(m, 0)
			if !feasible {
				t.Fatalf("n=%d seed=%d: synthetic instance must be feasible", n, seed)
			}
			if res.Best == nil {
				t.Fatalf("n=%d seed=%d: solver found no tour, brute force found %v", n, seed, want)
			}
			if math.Abs(res.Best.Cost-want) > fpSlack {
				t.Fatalf("n=%d seed=%d: cost %v, brute force %v", n, seed, res.Best.Cost, want)
			}

			// The reported tour must be a closed cycle over all cities
			// whose edge sum equals the reported cost.
			assertClosedTour(t, m, idx, res.Best)
		}
	}
}

// assertClosedTour checks structure and re-derives the cycle cost.
func assertClosedTour(t *testing.T, m bnb.CostMatrix, idx *costmatrix.Index, tour *bnb.Tour) {
	t.Helper()
	n := m.Size()
	if len(tour.Cities) != n+1 {
		t.Fatalf("tour length: got %d, want %d", len(tour.Cities), n+1)
	}
	if tour.Cities[0] != tour.Cities[n] {
		t.Fatalf("tour must close on its source: %v", tour.Cities)
	}
	p := pathIndices(t, idx, tour.Cities)
	seen := make(map[int]bool, n)
	var sum float64
	for i := 0; i < n; i++ {
		if seen[p[i]] {
			t.Fatalf("tour revisits city %v: %v", tour.Cities[i], tour.Cities)
		}
		seen[p[i]] = true
		sum += m.Cost(p[i], p[i+1])
	}
	if math.Abs(sum-tour.Cost) > fpSlack {
		t.Fatalf("tour cost mismatch: edges sum to %v, reported %v", sum, tour.Cost)
	}
}

// ---------------------------
// 5) Infinite costs / disconnection.
// ---------------------------

func TestSolve_DisconnectedCity_NoTourAfterExploration(t *testing.T) {
	// City D has no finite edges: the MST term over {B,C,D} is +Inf, so the
	// root bound is +Inf and the root itself is pruned at dequeue.
	m := testTable{a: [][]float64{
		{inf, 10, 15, inf},
		{10, inf, 35, inf},
		{15, 35, inf, inf},
		{inf, inf, inf, inf},
	}}
	idx := mkIndex(t, "A", "B", "C", "D")

	res := mustSolve(t, m, idx, srcA)
	if res.Best != nil {
		t.Fatalf("disconnected instance must yield no tour, got %+v", res.Best)
	}
	want := []bnb.Action{bnb.ActionExplore, bnb.ActionPrune}
	if got := actionsOf(res.Events); !slices.Equal(got, want) {
		t.Fatalf("actions: got %v, want %v", got, want)
	}
	if res.Explored != 1 {
		t.Fatalf("explored: got %d, want 1", res.Explored)
	}
	if !math.IsInf(res.Events[0].Node.LowerBound, 1) {
		t.Fatalf("root bound must be +Inf, got %v", res.Events[0].Node.LowerBound)
	}
}

// ---------------------------
// 6) Determinism and cancellation.
// ---------------------------

func TestSolve_Idempotence_ByteIdenticalActions(t *testing.T) {
	m, idx := fourCities(t)

	first := mustSolve(t, m, idx, srcA)
	second := mustSolve(t, m, idx, srcA)

	if !slices.Equal(signature(first.Events), signature(second.Events)) {
		t.Fatal("identical inputs must replay identical action/message sequences")
	}
	if first.Explored != second.Explored {
		t.Fatalf("explored differs across runs: %d vs %d", first.Explored, second.Explored)
	}
}

func TestSolveContext_CanceledBeforeFirstPop(t *testing.T) {
	m, idx := fourCities(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before the solve starts

	res, err := bnb.SolveContext(ctx, m, idx, srcA, bnb.DefaultOptions())
	mustErrIs(t, err, context.Canceled)

	// The root is announced before the first pop; cancellation between pops
	// leaves exactly that prefix.
	if got := actionsOf(res.Events); !slices.Equal(got, []bnb.Action{bnb.ActionExplore}) {
		t.Fatalf("canceled run must keep the root-explore prefix, got %v", got)
	}
	if res.Explored != 0 || res.Best != nil {
		t.Fatalf("canceled run must report no progress, got %+v", res)
	}
}

func TestSolveContext_UncanceledMatchesSolve(t *testing.T) {
	m, idx := fourCities(t)

	res, err := bnb.SolveContext(context.Background(), m, idx, srcA, bnb.DefaultOptions())
	if err != nil {
		t.Fatalf("SolveContext failed: %v", err)
	}
	plain := mustSolve(t, m, idx, srcA)

	if !slices.Equal(signature(res.Events), signature(plain.Events)) {
		t.Fatal("SolveContext with a live context must match Solve exactly")
	}
}
