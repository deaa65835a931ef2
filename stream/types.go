// SPDX-License-Identifier: MIT
// Package: tourbound/stream
//
// types.go — wire types and sentinel errors of the HTTP surface.
//
// Wire policy:
//   • Requests and responses are plain JSON DTOs with snake_case keys.
//   • A raw matrix arrives as [][]*float64: a null cell (and the diagonal)
//     means "no direct edge", since JSON has no literal for +Inf.
//   • Solver output (Tour, Event) is embedded as-is; bnb owns its wire form.

package stream

import (
	"errors"
	"time"

	"github.com/katalvlaran/tourbound/bnb"
)

// ErrRunNotFound is returned when a run id is not (or no longer) stored.
// Bounded eviction makes this a normal condition, not a server fault.
var ErrRunNotFound = errors.New("stream: run not found")

// ErrBadCapacity is returned by NewRunStore for a non-positive capacity.
var ErrBadCapacity = errors.New("stream: capacity must be positive")

// ErrEmptyInput is returned when a solve request carries neither points
// nor a raw matrix.
var ErrEmptyInput = errors.New("stream: request carries no points and no matrix")

// ErrAmbiguousInput is returned when a solve request carries both points
// and a raw matrix; exactly one instance form is accepted.
var ErrAmbiguousInput = errors.New("stream: request carries both points and matrix")

// ErrShapeMismatch is returned when a raw matrix is not square or its
// order disagrees with the id list.
var ErrShapeMismatch = errors.New("stream: matrix shape does not match ids")

// PointSpec is one labelled city position in a solve request.
type PointSpec struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// SolveRequest is the body of POST /solve. Exactly one of Points or
// Matrix+IDs must be present.
type SolveRequest struct {
	// Points describes the instance as plane coordinates; costs become
	// pairwise Euclidean distances.
	Points []PointSpec `json:"points,omitempty"`

	// Matrix describes the instance as explicit symmetric costs. A null
	// cell means "no direct edge"; the diagonal is ignored.
	Matrix [][]*float64 `json:"matrix,omitempty"`

	// IDs labels the matrix rows; required with Matrix, one id per row.
	IDs []string `json:"ids,omitempty"`

	// Source is the start city id; defaults to the first city.
	Source string `json:"source,omitempty"`

	// Eps widens the solver's pruning margin; zero keeps comparisons exact.
	Eps float64 `json:"eps,omitempty"`
}

// RunSummary is the response of POST /solve and GET /runs/:id.
type RunSummary struct {
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`
	Source    string    `json:"source"`
	Cities    int       `json:"cities"`
	Best      *bnb.Tour `json:"best"`
	Explored  int       `json:"explored"`
	Events    int       `json:"events"`
}

// EventsResponse is the response of GET /runs/:id/events: the complete
// ordered trace of one stored run.
type EventsResponse struct {
	RunID  string      `json:"run_id"`
	Events []bnb.Event `json:"events"`
}

// HealthResponse is the response of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Runs   int    `json:"runs"`
}

// ErrorResponse is the uniform error body of every non-2xx response.
type ErrorResponse struct {
	// Error is the human-readable message.
	Error string `json:"error"`

	// Code is the stable machine-readable classifier.
	Code string `json:"code"`
}
