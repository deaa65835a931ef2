// Package bnb — the admissible lower-bound estimator.
//
// For an incomplete partial tour the bound is the classical MST relaxation:
//
//	LB = costSoFar
//	   + min edge  last → unvisited        (must leave the current position)
//	   + MST cost over unvisited alone     (a spanning structure is ≤ any
//	                                        Hamiltonian path over them)
//	   + min edge  unvisited → source      (must return home)
//
// Each term lower-bounds a mandatory piece of any completion, so LB never
// exceeds the true optimal completion cost. For a complete path the bound
// is exact: costSoFar plus the closing edge.
//
// Edge conditions:
//   - Infinite costs propagate: a disconnected remainder yields LB = +Inf,
//     which the search turns into pruning, never a special case.
//   - Ties in the MST min-key scan break toward the lowest index. The tie
//     rule changes which optimal tree is found, never its cost.
//
// Complexity: O(k²) time for k unvisited cities (dense Prim), O(n) space
// reused across calls via scratch buffers on the engine.

package bnb

import "math"

// lowerBound estimates the cheapest completion of the node's path.
// Exact for complete paths; admissible otherwise.
func (e *engine) lowerBound(nd *node) float64 {
	var (
		last = nd.path[len(nd.path)-1] // current position
		k    = e.n - len(nd.path)      // unvisited city count
	)

	// Complete path: the only remaining cost is the closing edge.
	if k == 0 {
		return nd.cost + e.at(last, e.start)
	}

	// Collect the unvisited set once; reused by all three terms.
	unv := e.unvScratch[:0]
	var v int
	for v = 0; v < e.n; v++ {
		if !nd.mask.has(v) {
			unv = append(unv, v)
		}
	}

	var (
		leave = math.Inf(1) // cheapest edge last → unvisited
		enter = math.Inf(1) // cheapest edge unvisited → source
		c     float64       // current candidate edge
	)
	for _, v = range unv {
		if c = e.at(last, v); c < leave {
			leave = c
		}
		if c = e.at(v, e.start); c < enter {
			enter = c
		}
	}

	// Sum the mandatory pieces; +Inf in any term poisons the whole bound.
	return nd.cost + leave + e.mstCost(unv) + enter
}

// mstCost runs Prim's algorithm over the given city subset and returns the
// spanning-tree cost: start from the first listed city, repeatedly attach
// the cheapest edge from the tree to a non-tree member, accumulate the
// attached weights. Returns 0 for 0 or 1 cities; +Inf when the subset is
// disconnected under the finite edges.
func (e *engine) mstCost(unv []int) float64 {
	k := len(unv)
	if k <= 1 {
		return 0
	}

	var (
		inTree = e.inTreeScratch[:k] // tree membership per subset position
		best   = e.bestScratch[:k]   // cheapest connection cost per position
		total  float64               // accumulated MST cost
		it     int                   // attachment iteration
		i, j   int                   // subset cursors
		u      int                   // position chosen this iteration
		minW   float64               // its connection cost
		w      float64               // candidate edge weight
	)

	// Initialization: nothing in the tree, all connections open at +Inf,
	// then seed from the first listed city.
	for i = 0; i < k; i++ {
		inTree[i] = false
		best[i] = math.Inf(1)
	}
	best[0] = 0

	// Grow the tree one member per iteration.
	for it = 0; it < k; it++ {
		// Pick the cheapest open connection; the ascending scan with a
		// strict < keeps the lowest index on ties.
		u, minW = -1, math.Inf(1)
		for i = 0; i < k; i++ {
			if !inTree[i] && best[i] < minW {
				minW, u = best[i], i
			}
		}
		// No finite connection left: the remainder is disconnected.
		// Propagate infinity instead of dropping the term.
		if u < 0 {
			return math.Inf(1)
		}
		inTree[u] = true
		total += minW

		// Relax open connections through the newly attached member.
		for j = 0; j < k; j++ {
			if !inTree[j] {
				if w = e.at(unv[u], unv[j]); w < best[j] {
					best[j] = w
				}
			}
		}
	}

	return total
}
