// SPDX-License-Identifier: MIT
// Package costmatrix: Index — the stable city-ID ↔ matrix-index bijection.
//
// Design contract (strict):
//   - Built once before a solve; immutable afterwards (no Add/Remove surface).
//   - IDs are opaque, non-empty, unique strings; position i maps to ids[i].
//   - Determinism: the caller-supplied order IS the matrix order; the Index
//     never re-sorts, so the same input always yields the same mapping.

package costmatrix

import "fmt"

// Index is an immutable bijection between city identifiers and matrix
// indices. The zero value is unusable; construct via NewIndex.
type Index struct {
	ids []string       // position -> identifier
	pos map[string]int // identifier -> position
}

// NewIndex builds an Index from the given identifiers in order.
// Stage 1 (Validate): ids must be non-empty; every id non-empty and unique.
// Stage 2 (Prepare): build the reverse lookup map.
// Complexity: O(n) time and space.
func NewIndex(ids []string) (*Index, error) {
	// Validate the set is non-empty.
	if len(ids) == 0 {
		return nil, fmt.Errorf("NewIndex: %w", ErrNoPoints)
	}

	var (
		id string // current identifier
		i  int    // current position
	)
	own := make([]string, len(ids))       // private copy, caller keeps theirs
	pos := make(map[string]int, len(ids)) // reverse lookup
	for i, id = range ids {
		// Reject empty identifiers: they cannot be keys of a bijection.
		if id == "" {
			return nil, fmt.Errorf("NewIndex: position %d: %w", i, ErrEmptyID)
		}
		// Reject duplicates: a bijection admits each id exactly once.
		if _, dup := pos[id]; dup {
			return nil, fmt.Errorf("NewIndex: %q: %w", id, ErrDuplicateID)
		}
		own[i] = id
		pos[id] = i
	}

	return &Index{ids: own, pos: pos}, nil
}

// Len returns the number of identifiers in the bijection.
// Complexity: O(1).
func (x *Index) Len() int {
	return len(x.ids)
}

// IndexOf returns the matrix index of id and whether id is known.
// Complexity: O(1).
func (x *Index) IndexOf(id string) (int, bool) {
	i, ok := x.pos[id]

	return i, ok
}

// IDOf returns the identifier stored at matrix index i.
// Returns ErrOutOfRange when i is outside [0, Len()).
// Complexity: O(1).
func (x *Index) IDOf(i int) (string, error) {
	if i < 0 || i >= len(x.ids) {
		return "", fmt.Errorf("Index.IDOf(%d): %w", i, ErrOutOfRange)
	}

	return x.ids[i], nil
}

// IDs returns a copy of all identifiers in matrix order.
// The copy keeps the receiver immutable. Complexity: O(n).
func (x *Index) IDs() []string {
	out := make([]string, len(x.ids))
	copy(out, x.ids)

	return out
}
