// Package bnb — the best-first frontier and its node representation.
//
// The frontier is a binary min-heap (container/heap) over partial tours,
// keyed primarily by lower bound and secondarily by insertion sequence:
// among equal bounds the earliest-inserted node pops first. The secondary
// key is what makes traces reproducible — identical inputs replay an
// identical pop order, so tests may compare action sequences byte for byte.
//
// Complexity: Push/Pop O(log F) for frontier size F; Peek O(1).

package bnb

// node is one partial tour on (or bound for) the frontier.
// Each node owns its path and visited-set copies: nodes outlive their
// parents, and snapshots in the event log must never alias live state.
type node struct {
	id     int     // trace identifier, minted in creation order
	parent int     // id of the node this one was expanded from; NoParent for root
	path   []int   // visited city indices in order; path[0] == source
	mask   bitset  // membership form of path, kept authoritative by expand
	cost   float64 // exact accumulated edge cost of path
	bound  float64 // admissible lower bound on any completion of path
	seq    int     // frontier insertion sequence (tie-break key)
}

// level is the number of distinct cities on the node's path.
func (nd *node) level() int { return len(nd.path) }

// bitset is a fixed-capacity membership set over city indices.
// One word per 64 cities; operations are O(1).
type bitset []uint64

// newBitset allocates a bitset able to hold indices [0, n).
func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

// has reports whether index i is a member.
func (b bitset) has(i int) bool {
	return b[i>>6]&(1<<(uint(i)&63)) != 0
}

// set adds index i to the membership.
func (b bitset) set(i int) {
	b[i>>6] |= 1 << (uint(i) & 63)
}

// clone returns an independent copy of the membership.
func (b bitset) clone() bitset {
	out := make(bitset, len(b))
	copy(out, b)

	return out
}

// nodePQ implements heap.Interface over frontier nodes.
// Ordering: ascending bound; equal bounds pop earliest-inserted first.
type nodePQ []*node

// Len returns the current frontier size.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by (bound, seq): the strictly smallest bound wins, and the
// insertion sequence breaks ties deterministically.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].bound == pq[j].bound {
		return pq[i].seq < pq[j].seq
	}

	return pq[i].bound < pq[j].bound
}

// Swap exchanges two heap slots.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x to the heap storage (called via heap.Push).
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*node)) }

// Pop removes and returns the last heap slot (called via heap.Pop).
func (pq *nodePQ) Pop() any {
	old := *pq
	last := len(old) - 1
	nd := old[last]
	old[last] = nil // release the reference for GC
	*pq = old[:last]

	return nd
}
