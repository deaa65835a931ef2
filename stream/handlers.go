// SPDX-License-Identifier: MIT
// Package: tourbound/stream
//
// handlers.go — gin handlers of the solver API.
//
// Handler policy:
//   • ShouldBindJSON rejects malformed bodies with INVALID_REQUEST.
//   • Domain sentinels map to stable error codes via errors.Is; unknown
//     failures fall through to 500 SOLVE_FAILED.
//   • Solves run synchronously on the request goroutine and are bounded by
//     the request context: a dropped client cancels the search.

package stream

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/tourbound/bnb"
	"github.com/katalvlaran/tourbound/costmatrix"
)

// Handlers bundles the dependencies of the HTTP surface.
type Handlers struct {
	store   *RunStore
	metrics *Metrics
	log     *slog.Logger
}

// NewHandlers creates handlers over the given store, metrics, and logger.
func NewHandlers(store *RunStore, m *Metrics, log *slog.Logger) *Handlers {
	return &Handlers{store: store, metrics: m, log: log}
}

// HandleSolve handles POST /solve.
//
// Runs the exact solver on the submitted instance, stores the full trace
// under a fresh run id, and responds with the run summary.
//
// Response:
//
//	200 OK: RunSummary
//	400 Bad Request: malformed body or invalid instance
//	500 Internal Server Error: solve failed
func (h *Handlers) HandleSolve(c *gin.Context) {
	logger := h.log.With("request_id", requestID(c), "handler", "HandleSolve")

	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	matrix, index, err := buildInstance(req)
	if err != nil {
		logger.Warn("rejected instance", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  instanceErrorCode(err),
		})
		return
	}

	source := req.Source
	if source == "" {
		source = index.IDs()[0]
	}

	opts := bnb.DefaultOptions()
	opts.Eps = req.Eps

	start := time.Now()
	res, err := bnb.SolveContext(c.Request.Context(), matrix, index, source, opts)
	h.metrics.SolveDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		h.metrics.SolvesTotal.WithLabelValues(OutcomeError).Inc()

		status, code := http.StatusInternalServerError, "SOLVE_FAILED"
		switch {
		case errors.Is(err, bnb.ErrSourceNotFound):
			status, code = http.StatusBadRequest, "SOURCE_NOT_FOUND"
		case errors.Is(err, bnb.ErrBadOptions):
			status, code = http.StatusBadRequest, "BAD_OPTIONS"
		case errors.Is(err, bnb.ErrNegativeCost), errors.Is(err, bnb.ErrBadCost):
			status, code = http.StatusBadRequest, "BAD_COST"
		}

		logger.Error("solve failed", "error", err)
		c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
		return
	}

	run := &Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Source:    source,
		IDs:       index.IDs(),
		Result:    res,
	}
	h.store.Put(run)
	h.metrics.RunsStored.Set(float64(h.store.Len()))
	h.metrics.SolvesTotal.WithLabelValues(outcomeOf(res)).Inc()

	logger.Info("solve stored",
		"run_id", run.ID,
		"cities", index.Len(),
		"source", source,
		"explored", res.Explored,
		"events", len(res.Events),
		"feasible", res.Best != nil)

	c.JSON(http.StatusOK, summarize(run))
}

// HandleRun handles GET /runs/:id.
//
// Response:
//
//	200 OK: RunSummary
//	404 Not Found: unknown or evicted run id
func (h *Handlers) HandleRun(c *gin.Context) {
	run, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: ErrRunNotFound.Error(),
			Code:  "RUN_NOT_FOUND",
		})
		return
	}
	c.JSON(http.StatusOK, summarize(run))
}

// HandleRunEvents handles GET /runs/:id/events.
//
// Response:
//
//	200 OK: EventsResponse (the complete ordered trace)
//	404 Not Found: unknown or evicted run id
func (h *Handlers) HandleRunEvents(c *gin.Context) {
	run, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: ErrRunNotFound.Error(),
			Code:  "RUN_NOT_FOUND",
		})
		return
	}
	c.JSON(http.StatusOK, EventsResponse{
		RunID:  run.ID,
		Events: run.Result.Events,
	})
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Runs:   h.store.Len(),
	})
}

// buildInstance turns a solve request into a validated matrix and index.
// Exactly one instance form must be present.
func buildInstance(req SolveRequest) (*costmatrix.Dense, *costmatrix.Index, error) {
	switch {
	case len(req.Points) > 0 && len(req.Matrix) > 0:
		return nil, nil, ErrAmbiguousInput
	case len(req.Points) > 0:
		pts := make([]costmatrix.Point, len(req.Points))
		for i, p := range req.Points {
			pts[i] = costmatrix.Point{ID: p.ID, X: p.X, Y: p.Y}
		}
		return costmatrix.FromPoints(pts)
	case len(req.Matrix) > 0:
		return denseFromRows(req.Matrix, req.IDs)
	default:
		return nil, nil, ErrEmptyInput
	}
}

// denseFromRows fills a Dense from explicit rows and verifies symmetry.
// Cells are written one-sided on purpose: a contradictory lower triangle
// must surface as ErrAsymmetry instead of being silently mirrored away.
func denseFromRows(rows [][]*float64, ids []string) (*costmatrix.Dense, *costmatrix.Index, error) {
	n := len(rows)
	if len(ids) != n {
		return nil, nil, fmt.Errorf("denseFromRows: %d rows vs %d ids: %w", n, len(ids), ErrShapeMismatch)
	}

	index, err := costmatrix.NewIndex(ids)
	if err != nil {
		return nil, nil, err
	}
	m, err := costmatrix.NewDense(n)
	if err != nil {
		return nil, nil, err
	}

	for i, row := range rows {
		if len(row) != n {
			return nil, nil, fmt.Errorf("denseFromRows: row %d has %d cells, want %d: %w", i, len(row), n, ErrShapeMismatch)
		}
		for j, cell := range row {
			// Diagonal stays +Inf; a null cell means "no direct edge".
			if i == j || cell == nil {
				continue
			}
			if err := m.Set(i, j, *cell); err != nil {
				return nil, nil, err
			}
		}
	}

	if err := costmatrix.ValidateSymmetric(m, costmatrix.DefaultSymTol); err != nil {
		return nil, nil, err
	}
	return m, index, nil
}

// instanceErrorCode classifies instance-construction failures for the
// uniform error body.
func instanceErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrEmptyInput), errors.Is(err, ErrAmbiguousInput):
		return "INVALID_INPUT"
	case errors.Is(err, ErrShapeMismatch), errors.Is(err, costmatrix.ErrBadShape):
		return "BAD_SHAPE"
	case errors.Is(err, costmatrix.ErrAsymmetry):
		return "ASYMMETRY"
	case errors.Is(err, costmatrix.ErrNegativeCost), errors.Is(err, costmatrix.ErrBadCost):
		return "BAD_COST"
	case errors.Is(err, costmatrix.ErrEmptyID), errors.Is(err, costmatrix.ErrDuplicateID):
		return "BAD_IDS"
	default:
		return "BAD_INSTANCE"
	}
}

// outcomeOf labels a clean solve for solves_total.
func outcomeOf(res bnb.Result) string {
	if res.Best != nil {
		return OutcomeOptimal
	}
	return OutcomeInfeasible
}

// summarize projects a stored run onto its wire summary.
func summarize(run *Run) RunSummary {
	return RunSummary{
		RunID:     run.ID,
		CreatedAt: run.CreatedAt,
		Source:    run.Source,
		Cities:    len(run.IDs),
		Best:      run.Result.Best,
		Explored:  run.Result.Explored,
		Events:    len(run.Result.Events),
	}
}
