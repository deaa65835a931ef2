// SPDX-License-Identifier: MIT
// Package: tourbound/stream
//
// routes.go — route registration for the solver API.

package stream

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the solver API on rg.
//
// Endpoints:
//
//	POST /solve           - run a solve, store the trace
//	GET  /runs/:id        - summary of a stored run
//	GET  /runs/:id/events - full ordered event log
//	GET  /runs/:id/ws     - websocket replay of the log
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.POST("/solve", h.HandleSolve)

	runs := rg.Group("/runs")
	{
		runs.GET("/:id", h.HandleRun)
		runs.GET("/:id/events", h.HandleRunEvents)
		runs.GET("/:id/ws", h.HandleReplay)
	}
}
