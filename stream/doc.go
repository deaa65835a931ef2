// Package stream serves exact solves and trace replays over HTTP and
// websocket.
//
// Overview:
//
//   - POST /api/v1/solve runs the branch-and-bound solver synchronously on
//     a submitted instance (plane points, or an explicit symmetric cost
//     matrix) and stores the complete search trace under a fresh run id.
//   - GET /api/v1/runs/:id and /runs/:id/events return the stored summary
//     and the full ordered event log.
//   - GET /api/v1/runs/:id/ws replays the log over a websocket at a
//     client-chosen pace, one JSON frame per event, closing with a summary
//     frame.
//   - GET /healthz and GET /metrics expose liveness and prometheus
//     instruments.
//
// Storage is in-memory and process-lifetime only: the run store holds a
// bounded number of finished runs and evicts the oldest when full. Stored
// runs are immutable; a replay is always byte-for-byte the trace the solve
// produced.
//
// Assemble with NewService, then either Run(addr) or mount Handler() on a
// server you manage.
package stream
