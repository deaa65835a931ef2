// SPDX-License-Identifier: MIT
// Package: tourbound/stream
//
// ws.go — websocket replay of a stored trace.
//
// Protocol (server push only):
//   • One JSON ReplayFrame per trace event, paced by ?interval_ms=
//     (playback.DefaultInterval when absent, 0 streams without delay).
//   • A trailing ReplayDone frame with the run summary, then a normal
//     close frame.
//   • Pings flow between frames so intermediaries keep slow replays alive;
//     anything the client sends is drained and ignored.

package stream

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/katalvlaran/tourbound/bnb"
	"github.com/katalvlaran/tourbound/playback"
)

const (
	// writeWait bounds any single websocket write.
	writeWait = 10 * time.Second

	// pingPeriod paces liveness pings between event frames.
	pingPeriod = 30 * time.Second
)

// Replays are read-only views of finished searches; any origin may watch.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// ReplayFrame is one pushed websocket message: an event and its position
// in the log.
type ReplayFrame struct {
	Seq   int       `json:"seq"`
	Total int       `json:"total"`
	Event bnb.Event `json:"event"`
}

// ReplayDone trails the last frame with the run summary.
type ReplayDone struct {
	Done     bool      `json:"done"`
	RunID    string    `json:"run_id"`
	Best     *bnb.Tour `json:"best"`
	Explored int       `json:"explored"`
	Events   int       `json:"events"`
}

// HandleReplay handles GET /runs/:id/ws.
//
// Upgrades to a websocket and replays the stored log at the client-chosen
// pace. The replay ends with a ReplayDone frame and a normal close, or
// earlier when the client disconnects.
//
// Query Parameters:
//
//	interval_ms: delay between frames, non-negative integer (optional)
func (h *Handlers) HandleReplay(c *gin.Context) {
	logger := h.log.With("request_id", requestID(c), "handler", "HandleReplay")

	run, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: ErrRunNotFound.Error(),
			Code:  "RUN_NOT_FOUND",
		})
		return
	}

	interval := playback.DefaultInterval
	if raw := c.Query("interval_ms"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "interval_ms must be a non-negative integer",
				Code:  "BAD_INTERVAL",
			})
			return
		}
		interval = time.Duration(ms) * time.Millisecond
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error response.
		logger.Error("websocket upgrade failed", "error", err)
		return
	}

	h.metrics.WSReplaysTotal.Inc()
	logger.Info("replay started",
		"run_id", run.ID,
		"events", len(run.Result.Events),
		"interval", interval)

	if err := replay(c.Request.Context(), conn, run, interval); err != nil {
		logger.Info("replay ended early", "run_id", run.ID, "error", err)
		return
	}
	logger.Info("replay finished", "run_id", run.ID)
}

// wsWriter serializes connection writes: the replay sink and the ping
// ticker both write, and gorilla permits one concurrent writer only.
type wsWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *wsWriter) writeJSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return w.conn.WriteJSON(v)
}

func (w *wsWriter) ping() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return w.conn.WriteMessage(websocket.PingMessage, nil)
}

func (w *wsWriter) close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return w.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replay complete"))
}

// replay pushes the stored log to conn at the requested pace, then the
// summary frame and a normal close. Returns nil only on a full replay.
func replay(ctx context.Context, conn *websocket.Conn, run *Run, interval time.Duration) error {
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := &wsWriter{conn: conn}

	// Reader loop. The client sends nothing meaningful, but reading is what
	// surfaces close frames and broken pipes; any read error ends the replay.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	// Ping loop, so slow replays survive idle-connection middleboxes.
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := w.ping(); err != nil {
					cancel()
					return
				}
			}
		}
	}()

	total := len(run.Result.Events)
	seq := 0
	sink := func(ev bnb.Event) error {
		frame := ReplayFrame{Seq: seq, Total: total, Event: ev}
		seq++
		return w.writeJSON(frame)
	}
	if err := playback.Play(ctx, run.Result.Events, sink, playback.WithInterval(interval)); err != nil {
		return err
	}

	if err := w.writeJSON(ReplayDone{
		Done:     true,
		RunID:    run.ID,
		Best:     run.Result.Best,
		Explored: run.Result.Explored,
		Events:   total,
	}); err != nil {
		return err
	}
	return w.close()
}
