// Package bnb solves the symmetric Travelling Salesman Problem exactly via
// best-first Branch-and-Bound, and records the complete search as an
// ordered event trace.
//
// The solver consumes a dense cost matrix plus a city index (see
// costmatrix) and a designated source city, and produces:
//
//   - the globally optimal closed tour for that source (or "no tour"),
//   - an append-only log of every explore/prune/complete decision,
//     sufficient to reconstruct the entire search tree,
//   - the count of frontier nodes dequeued.
//
// Search strategy:
//   - Best-first: the frontier node with the least admissible lower bound
//     is always expanded next; equal bounds pop in insertion order.
//   - The bound is the classical MST relaxation: accumulated cost, plus the
//     cheapest edge out of the current position, plus a minimum spanning
//     tree over the unvisited cities, plus the cheapest edge back to the
//     source. Admissible, so pruning never discards the optimum.
//   - Pruning requires bound ≥ incumbent; strict improvement is required
//     both to keep a node and to replace the incumbent.
//
// Complexity: exponential in n in the worst case (the problem is exact);
// per node O(n²) for the bound. Practical instances up to n≈20 solve
// quickly thanks to pruning.
//
// Determinism: identical inputs replay an identical sequence of actions and
// messages (timestamps aside). Costs must be symmetric; the bound's
// return-to-source term is not admissible for asymmetric instances, and the
// solver does not attempt to generalize it.
//
// Errors: sentinel values from types.go, matched with errors.Is. The
// designated source missing from the index is the distinct configuration
// error ErrSourceNotFound, raised before any search work with zero events
// produced.
package bnb
