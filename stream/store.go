// SPDX-License-Identifier: MIT
// Package: tourbound/stream
//
// store.go — bounded in-memory store of finished runs.
//
// Design:
//   • Process-lifetime only: nothing is persisted, restarts forget all runs.
//   • Bounded: storing past capacity evicts the oldest run (insertion order).
//   • Immutable: a stored Run is never modified; readers share the pointer.

package stream

import (
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/tourbound/bnb"
)

// Run is one stored solve: instance identity plus the full solver output.
// Treat stored runs as read-only; summaries and replays only ever read.
type Run struct {
	ID        string
	CreatedAt time.Time
	Source    string
	IDs       []string
	Result    bnb.Result
}

// RunStore holds finished runs keyed by id, bounded by a fixed capacity.
// All methods are safe for concurrent use.
type RunStore struct {
	mu    sync.RWMutex
	cap   int
	runs  map[string]*Run
	order []string // insertion order, oldest first
}

// NewRunStore returns a store holding at most capacity runs.
// Returns ErrBadCapacity (wrapped) when capacity < 1.
func NewRunStore(capacity int) (*RunStore, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("NewRunStore: capacity=%d: %w", capacity, ErrBadCapacity)
	}
	return &RunStore{
		cap:  capacity,
		runs: make(map[string]*Run, capacity),
	}, nil
}

// Put stores run, evicting the oldest stored run when at capacity.
// Storing an id twice replaces the run in place without touching the
// eviction order.
func (s *RunStore) Put(run *Run) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[run.ID]; exists {
		s.runs[run.ID] = run
		return
	}
	if len(s.order) >= s.cap {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.runs, oldest)
	}
	s.runs[run.ID] = run
	s.order = append(s.order, run.ID)
}

// Get returns the run stored under id, or (nil, false) when absent.
func (s *RunStore) Get(id string) (*Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	return run, ok
}

// Len reports how many runs are currently stored.
func (s *RunStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
