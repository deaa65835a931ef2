// Package bnb — best-first Branch-and-Bound search (exact, fully traced).
//
// SolveContext enumerates partial tours from a fixed source city, always
// expanding the frontier node with the least admissible lower bound, and
// records every decision in an ordered event log.
//
// Rationale (succinct):
//  1. Strict input validation happens up front; the cost matrix is then
//     prefetched into a dense buffer to remove interface overhead in hot
//     loops.
//  2. The frontier is a binary min-heap keyed by (bound, insertion seq):
//     "least lower bound first" drives near-optimal-order exploration, and
//     the earliest-inserted tie-break keeps runs byte-for-byte reproducible.
//  3. Pruning is two-stage: children whose bound cannot strictly beat the
//     incumbent are recorded and dropped at creation (never enqueued), and
//     surviving nodes are re-checked at dequeue against the incumbent of
//     that moment. Strict < is required to keep a node — an equal bound
//     cannot yield a strictly better tour.
//  4. Only strictly improving completions touch the incumbent and the log;
//     non-improving completions are deliberately silent.
//  5. Node IDs and frontier sequences are owned by the engine instance, so
//     concurrent independent solves never share state.
//
// Complexity:
//   - Worst case exponential in n (exact search); pruning provides the
//     practical speed.
//   - Per node: O(n²) bound (dense Prim over the unvisited set) + O(log F)
//     heap traffic for frontier size F.
//   - Memory: O(n) per live node (path + visited bitset) + O(n²) for the
//     prefetched matrix; the event log holds one snapshot per decision.

package bnb

import (
	"container/heap"
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/tourbound/costmatrix"
)

// roundScale controls incumbent cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// round1e9 stabilizes a committed cost to 1e-9 precision.
func round1e9(x float64) float64 { return math.Round(x*roundScale) / roundScale }

// engine holds all search data and policies for one solve.
// A dedicated struct (instead of anonymous closures) keeps dependencies
// explicit, testing simpler, and hot-path state predictable. Nothing in it
// survives the solve or is shared with another.
type engine struct {
	// Configuration / policy
	n     int
	start int
	eps   float64

	// Graph data (dense buffer): w[u*n+v]
	w []float64

	// City identifiers by matrix index (for snapshot rendering)
	ids []string

	// Trace state: append-only log plus the instance-owned ID sequence
	events []Event
	nextID int

	// Frontier and its insertion sequence (tie-break key)
	pq      nodePQ
	nextSeq int

	// Incumbent (best complete tour so far)
	bestPath []int // closed index cycle, bestPath[0] == bestPath[n] == start
	bestCost float64
	found    bool

	// Explored counts nodes dequeued from the frontier
	explored int

	// Bound scratch buffers, reused across lowerBound calls
	unvScratch    []int
	inTreeScratch []bool
	bestScratch   []float64
}

// at is a fast accessor into the dense cost buffer.
func (e *engine) at(u, v int) float64 { return e.w[u*e.n+v] }

// newRoot builds the root node: path = [source], cost 0, level 1.
func (e *engine) newRoot() *node {
	nd := &node{
		id:     e.nextID,
		parent: NoParent,
		path:   []int{e.start},
		mask:   newBitset(e.n),
	}
	e.nextID++
	nd.mask.set(e.start)
	nd.bound = e.lowerBound(nd)

	return nd
}

// newChild extends parent by one city. The child owns fresh path/mask
// copies; parent state is never aliased.
func (e *engine) newChild(parent *node, last, city int) *node {
	path := make([]int, len(parent.path)+1)
	copy(path, parent.path)
	path[len(parent.path)] = city

	nd := &node{
		id:     e.nextID,
		parent: parent.id,
		path:   path,
		mask:   parent.mask.clone(),
		cost:   parent.cost + e.at(last, city),
	}
	e.nextID++
	nd.mask.set(city)
	nd.bound = e.lowerBound(nd)

	return nd
}

// snapshot renders the node into an immutable Solution value.
func (e *engine) snapshot(nd *node, pruned bool) Solution {
	ids := make([]string, len(nd.path))
	var i, v int
	for i, v = range nd.path {
		ids[i] = e.ids[v]
	}

	return Solution{
		ID:         nd.id,
		ParentID:   nd.parent,
		Path:       ids,
		Cost:       nd.cost,
		LowerBound: nd.bound,
		Level:      nd.level(),
		IsComplete: nd.level() == e.n,
		IsPruned:   pruned,
	}
}

// emit appends one trace record. Messages are deterministic; only the
// timestamp varies between identical runs.
func (e *engine) emit(s Solution, act Action, msg string) {
	e.events = append(e.events, Event{Node: s, Action: act, Message: msg, Timestamp: time.Now()})
}

// push assigns the insertion sequence, enqueues the node, and records the
// explore event. Every node entering the frontier — the root included —
// is announced exactly once, here.
func (e *engine) push(nd *node) {
	nd.seq = e.nextSeq
	e.nextSeq++
	heap.Push(&e.pq, nd)

	s := e.snapshot(nd, false)
	e.emit(s, ActionExplore, fmt.Sprintf("explore %s: level %d, cost %s, bound %s",
		pathString(s.Path), s.Level, fmtCost(s.Cost), fmtCost(s.LowerBound)))
}

// prune records the discard of a node whose bound could not strictly beat
// the incumbent, either at dequeue or before ever being enqueued.
func (e *engine) prune(nd *node) {
	s := e.snapshot(nd, true)
	e.emit(s, ActionPrune, fmt.Sprintf("prune %s: bound %s ≥ best %s",
		pathString(s.Path), fmtCost(s.LowerBound), fmtCost(e.bestCost)))
}

// complete closes the node's cycle and compares it against the incumbent.
// Strict improvement updates the incumbent and emits a complete event with
// the closing edge appended to the snapshot path; a non-improving cycle
// produces no event.
func (e *engine) complete(nd *node) {
	var (
		last  = nd.path[len(nd.path)-1]       // final city before closing
		total = nd.cost + e.at(last, e.start) // true cycle cost
		prev  = e.bestCost                    // incumbent before this node
	)
	if total >= e.bestCost-e.eps {
		return
	}

	// Commit the new incumbent with stabilized cost.
	e.bestCost = round1e9(total)
	e.bestPath = append(append(e.bestPath[:0], nd.path...), e.start)
	e.found = true

	s := e.snapshot(nd, false)
	s.Path = append(s.Path, e.ids[e.start]) // closing edge appended
	s.Cost = e.bestCost
	e.emit(s, ActionComplete, fmt.Sprintf("complete %s: cost %s (best was %s)",
		pathString(s.Path), fmtCost(e.bestCost), fmtCost(prev)))
}

// expand generates one child per unvisited city, in ascending index order
// so that node IDs and insertion sequences replay identically across runs.
// Children that cannot strictly beat the incumbent are pruned at creation
// and never enqueued; infinite bounds (disconnected remainders) fall into
// the same branch rather than being special-cased.
func (e *engine) expand(nd *node) {
	var (
		last  = nd.path[len(nd.path)-1] // current position
		v     int                       // candidate city
		child *node                     // freshly built extension
	)
	for v = 0; v < e.n; v++ {
		if nd.mask.has(v) {
			continue
		}
		child = e.newChild(nd, last, v)
		if child.bound >= e.bestCost-e.eps {
			e.prune(child)
			continue
		}
		e.push(child)
	}
}

// run executes the search protocol to frontier exhaustion, checking ctx
// between frontier-pop iterations. On cancellation the event log produced
// so far is an immutable prefix of what the full run would have emitted.
func (e *engine) run(ctx context.Context) error {
	// Root enters the frontier unconditionally and is announced like any
	// other node.
	e.push(e.newRoot())

	var nd *node
	for e.pq.Len() > 0 {
		// Cooperative cancellation between pops (the only yield point).
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("Solve: canceled after %d events: %w", len(e.events), err)
		}

		// Always pop the strictly smallest bound; ties pop in insertion
		// order (see nodePQ).
		nd = heap.Pop(&e.pq).(*node)
		e.explored++

		// Re-check against the incumbent of this moment: it may have
		// improved since the node was enqueued.
		if nd.bound >= e.bestCost-e.eps {
			e.prune(nd)
			continue
		}

		// Full-length path: close the cycle and compare.
		if nd.level() == e.n {
			e.complete(nd)
			continue
		}

		e.expand(nd)
	}

	return nil
}

// result assembles the caller-facing outcome from the engine state.
func (e *engine) result() Result {
	res := Result{Events: e.events, Explored: e.explored}
	if e.found {
		cities := make([]string, len(e.bestPath))
		var i, v int
		for i, v = range e.bestPath {
			cities[i] = e.ids[v]
		}
		res.Best = &Tour{Cities: cities, Cost: e.bestCost}
	}

	return res
}

// Solve runs the exact search to frontier exhaustion.
// It is SolveContext with a background context; see there for the contract.
func Solve(m CostMatrix, index *costmatrix.Index, source string, opts Options) (Result, error) {
	return SolveContext(context.Background(), m, index, source, opts)
}

// SolveContext runs the exact Branch-and-Bound search from the designated
// source city and returns the optimal tour together with the complete
// ordered event trace and the count of dequeued nodes.
//
// Outcomes:
//   - Result.Best is the globally optimal closed tour for the fixed source,
//     or nil when no feasible tour exists: fewer than 2 cities (declined
//     quickly, zero events) or no finite cycle (discovered by exhaustion,
//     full trace present).
//   - Errors: ErrSourceNotFound before any frontier work when source is not
//     a key of index; ErrNilMatrix / ErrNilIndex / ErrDimensionMismatch /
//     ErrBadCost / ErrNegativeCost / ErrBadOptions for malformed input.
//     On ctx cancellation the partial Result produced so far is returned
//     together with the wrapped ctx error.
//
// The search itself is single-threaded; each call owns fresh frontier,
// incumbent, and log state, so independent solves may run concurrently.
func SolveContext(ctx context.Context, m CostMatrix, index *costmatrix.Index, source string, opts Options) (Result, error) {
	// Staged validation; the source miss is the configuration error and
	// fires before any frontier work.
	n, src, err := validateInputs(m, index, source, opts)
	if err != nil {
		return Result{}, err
	}

	// Degenerate input: fewer than 2 cities cannot form a round trip.
	// Decline to search — "no tour" quickly, zero events, no error.
	if n < 2 {
		return Result{}, nil
	}

	// Engine initialization (no anonymous closures, no globals).
	var e engine
	e.n = n
	e.start = src
	e.eps = opts.Eps
	e.ids = index.IDs()
	e.bestCost = math.Inf(1)
	e.bestPath = make([]int, 0, n+1)

	// Prefetch under strict sentinels (NaN / -Inf / negative rejected).
	if err = e.prefetch(m); err != nil {
		return Result{}, err
	}

	// Bound scratch allocation, reused for every node.
	e.unvScratch = make([]int, 0, n)
	e.inTreeScratch = make([]bool, n)
	e.bestScratch = make([]float64, n)
	e.pq = make(nodePQ, 0, n)

	// Run to exhaustion (or cancellation); the trace stays a valid prefix.
	runErr := e.run(ctx)

	res := e.result()
	if runErr != nil {
		return res, runErr
	}

	return res, nil
}

// pathString renders a path as "A→B→C" for trace messages.
func pathString(ids []string) string {
	return strings.Join(ids, "→")
}

// fmtCost renders a cost compactly and deterministically; +Inf prints as ∞.
func fmtCost(x float64) string {
	if math.IsInf(x, 1) {
		return "∞"
	}

	return strconv.FormatFloat(x, 'g', -1, 64)
}
