// Package bnb — the search trace: actions, solution snapshots, events.
//
// The event log is the externally observable record of the whole search.
// It is write-once and append-only: every record holds a value snapshot of
// the node at decision time, so later engine state changes can never
// retroactively alter an emitted event.

package bnb

import (
	"encoding/json"
	"math"
	"time"
)

// Action classifies a search decision.
type Action string

const (
	// ActionExplore marks a node entering the frontier (the root included).
	ActionExplore Action = "explore"

	// ActionPrune marks a node discarded because its bound could not beat
	// the incumbent — either at dequeue or before ever being enqueued.
	ActionPrune Action = "prune"

	// ActionComplete marks a full tour that strictly improved the incumbent.
	// Completions that fail to improve emit nothing.
	ActionComplete Action = "complete"
)

// NoParent is the ParentID of the root snapshot: the root was not expanded
// from any node.
const NoParent = -1

// Solution is a value snapshot of one search node. IDs are minted by the
// owning solve in creation order, starting at 0 for the root; they are
// unique within one solve and carry no meaning across solves.
type Solution struct {
	// ID identifies this node within the solve's trace.
	ID int `json:"id"`

	// ParentID is the ID of the node this one was expanded from,
	// or NoParent for the root.
	ParentID int `json:"parentId"`

	// Path is the ordered sequence of visited city identifiers, always
	// starting with the source. In a complete-action snapshot the closing
	// edge is appended, so the path ends with the source again.
	Path []string `json:"path"`

	// Cost is the exact accumulated edge cost of Path.
	Cost float64 `json:"cost"`

	// LowerBound is Cost plus an admissible estimate of the cheapest
	// completion; always >= Cost.
	LowerBound float64 `json:"lowerBound"`

	// Level is the number of distinct cities in Path (1 for the root;
	// equal to the city count when the tour is complete).
	Level int `json:"level"`

	// IsComplete reports whether Level equals the total number of cities.
	IsComplete bool `json:"isComplete"`

	// IsPruned reports whether the node was discarded without expansion.
	IsPruned bool `json:"isPruned"`
}

// MarshalJSON encodes the snapshot with non-finite numbers as null: JSON
// has no literal for ±Inf, and pruned branches with no usable edge carry
// LowerBound (sometimes Cost) of +Inf. A null cost therefore reads as
// "unreachable", matching what JSON.stringify would emit for Infinity.
func (s Solution) MarshalJSON() ([]byte, error) {
	type wire struct {
		ID         int      `json:"id"`
		ParentID   int      `json:"parentId"`
		Path       []string `json:"path"`
		Cost       *float64 `json:"cost"`
		LowerBound *float64 `json:"lowerBound"`
		Level      int      `json:"level"`
		IsComplete bool     `json:"isComplete"`
		IsPruned   bool     `json:"isPruned"`
	}
	return json.Marshal(wire{
		ID:         s.ID,
		ParentID:   s.ParentID,
		Path:       s.Path,
		Cost:       finiteOrNil(s.Cost),
		LowerBound: finiteOrNil(s.LowerBound),
		Level:      s.Level,
		IsComplete: s.IsComplete,
		IsPruned:   s.IsPruned,
	})
}

func finiteOrNil(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}

// Event is one immutable record of the search trace.
type Event struct {
	// Node is the solution snapshot at decision time.
	Node Solution `json:"solution"`

	// Action is the decision taken for Node.
	Action Action `json:"action"`

	// Message is a human-readable, deterministic description of the
	// decision (timestamps excluded, so identical inputs replay
	// identical messages).
	Message string `json:"message"`

	// Timestamp records when the event was appended.
	Timestamp time.Time `json:"timestamp"`
}
