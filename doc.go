// Package tourbound solves symmetric round trips exactly — and shows its
// work: every explore, prune and complete decision of the search is
// recorded, replayable, and streamable.
//
// 🚀 What is tourbound?
//
//	A small, focused toolkit for exact tour optimization on point sets:
//		• Cost matrices: symmetric matrices, city indexes, points → costs
//		• Exact solver: best-first branch-and-bound with MST lower bounds
//		• Full traces: one immutable event per search decision
//		• Layout: seeded, collision-free city placement on a canvas
//		• Playback: replay any finished trace at a chosen cadence
//		• Service: HTTP + WebSocket replays, Prometheus instrumented
//		• CLI: generate, solve and serve from one binary
//
// ✨ Why choose tourbound?
//
//   - Exact, not approximate – the returned tour is provably optimal
//   - Deterministic – identical inputs replay identical traces
//   - Inspectable – the trace reconstructs the whole search tree
//   - Batteries included – library, HTTP service and CLI share one engine
//
// Under the hood, everything is organized under a handful of subpackages:
//
//	costmatrix/ — Dense symmetric matrices, Index, FromPoints building
//	bnb/        — the branch-and-bound engine, events, tours, results
//	layout/     — random planar instance generation (bounds, spacing, seeds)
//	playback/   — paced, cancelable replay of recorded traces
//	stream/     — gin service: solve, fetch runs, watch replays over WS
//	cmd/        — the tourbound command (gen / solve / serve)
//
// Quick ASCII example:
//
//	    A───B        legs: A–B=1, A–C=2, B–C=3
//	     ╲  │
//	      ╲ │        optimal cycle: A → B → C → A, cost 6,
//	        C        proved with 5 explored nodes and 7 trace events.
//
// Dive into examples/ for runnable demos, or start the service with
// `tourbound serve` and watch a search think over a websocket.
//
//	go get github.com/katalvlaran/tourbound
package tourbound
