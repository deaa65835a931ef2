// SPDX-License-Identifier: MIT
// Package: tourbound/stream
//
// store_test.go — unit tests for the bounded run store.

package stream

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/tourbound/bnb"
)

func testRun(id string) *Run {
	return &Run{
		ID:     id,
		Source: "A",
		IDs:    []string{"A", "B"},
		Result: bnb.Result{Explored: 1},
	}
}

func TestNewRunStore_BadCapacity(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{0, -1, -64} {
		if _, err := NewRunStore(capacity); !errors.Is(err, ErrBadCapacity) {
			t.Errorf("NewRunStore(%d): err=%v, want ErrBadCapacity", capacity, err)
		}
	}
}

func TestRunStore_PutGetLen(t *testing.T) {
	t.Parallel()

	s, err := NewRunStore(4)
	if err != nil {
		t.Fatalf("NewRunStore: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("empty store Len=%d, want 0", s.Len())
	}

	run := testRun("r1")
	s.Put(run)

	got, ok := s.Get("r1")
	if !ok {
		t.Fatal("Get(r1): not found after Put")
	}
	if got != run {
		t.Error("Get(r1): returned a different run pointer")
	}
	if s.Len() != 1 {
		t.Errorf("Len=%d, want 1", s.Len())
	}

	if _, ok := s.Get("missing"); ok {
		t.Error("Get(missing): found a run that was never stored")
	}
}

func TestRunStore_EvictsOldest(t *testing.T) {
	t.Parallel()

	s, err := NewRunStore(2)
	if err != nil {
		t.Fatalf("NewRunStore: %v", err)
	}

	s.Put(testRun("r1"))
	s.Put(testRun("r2"))
	s.Put(testRun("r3")) // evicts r1

	if _, ok := s.Get("r1"); ok {
		t.Error("r1 should have been evicted")
	}
	for _, id := range []string{"r2", "r3"} {
		if _, ok := s.Get(id); !ok {
			t.Errorf("%s missing after eviction of r1", id)
		}
	}
	if s.Len() != 2 {
		t.Errorf("Len=%d, want 2", s.Len())
	}

	s.Put(testRun("r4")) // evicts r2
	if _, ok := s.Get("r2"); ok {
		t.Error("r2 should have been evicted")
	}
	if s.Len() != 2 {
		t.Errorf("Len=%d, want 2 after second eviction", s.Len())
	}
}

func TestRunStore_ReplaceKeepsOrder(t *testing.T) {
	t.Parallel()

	s, err := NewRunStore(2)
	if err != nil {
		t.Fatalf("NewRunStore: %v", err)
	}

	s.Put(testRun("r1"))
	s.Put(testRun("r2"))

	replacement := testRun("r1")
	replacement.Source = "B"
	s.Put(replacement)

	if s.Len() != 2 {
		t.Fatalf("Len=%d after replace, want 2", s.Len())
	}
	got, ok := s.Get("r1")
	if !ok || got.Source != "B" {
		t.Errorf("replace did not take: ok=%v run=%+v", ok, got)
	}

	// r1 keeps its original (oldest) slot: the next insert evicts it.
	s.Put(testRun("r3"))
	if _, ok := s.Get("r1"); ok {
		t.Error("replaced r1 should still be first out")
	}
}

func TestRunStore_CapacityOne(t *testing.T) {
	t.Parallel()

	s, err := NewRunStore(1)
	if err != nil {
		t.Fatalf("NewRunStore: %v", err)
	}

	for i := 0; i < 5; i++ {
		s.Put(testRun(fmt.Sprintf("r%d", i)))
		if s.Len() != 1 {
			t.Fatalf("Len=%d after put %d, want 1", s.Len(), i)
		}
	}
	if _, ok := s.Get("r4"); !ok {
		t.Error("latest run missing from capacity-1 store")
	}
}
