// Package playback - throttled replay of solver event logs.
//
// The driver treats the log as an immutable, already-finalized sequence: it
// owns no solver state, feeds nothing back, and stops cleanly on context
// cancellation or the first sink error.
package playback

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/tourbound/bnb"
)

// Play delivers every event to fn in log order. The first event goes out
// immediately; each subsequent delivery waits one interval tick. A canceled
// context or a sink error aborts the replay with a wrapped cause; events
// already delivered stay delivered (the sink observes an exact prefix).
//
// Complexity: O(len(events)) deliveries; memory O(1) beyond the inputs.
func Play(ctx context.Context, events []bnb.Event, fn Sink, opts ...Option) error {
	if fn == nil {
		return fmt.Errorf("Play: %w", ErrNilSink)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(events) == 0 {
		return nil
	}

	var ticker *time.Ticker
	if cfg.Interval > 0 {
		ticker = time.NewTicker(cfg.Interval)
		defer ticker.Stop()
	}

	for i := range events {
		if i > 0 && ticker != nil {
			select {
			case <-ctx.Done():
				return fmt.Errorf("Play: canceled after %d of %d events: %w", i, len(events), ctx.Err())
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return fmt.Errorf("Play: canceled after %d of %d events: %w", i, len(events), err)
		}
		if err := fn(events[i]); err != nil {
			return fmt.Errorf("Play: sink failed at event %d: %w", i, err)
		}
	}

	return nil
}

// Timeline returns each event's offset from the first event's timestamp,
// index-aligned with the input. Logs produced by the solver stamp events in
// emission order, so offsets come out non-negative and non-decreasing.
// Returns nil for an empty log.
//
// Complexity: O(len(events)) time and space.
func Timeline(events []bnb.Event) []time.Duration {
	if len(events) == 0 {
		return nil
	}
	var (
		base = events[0].Timestamp
		out  = make([]time.Duration, len(events))
	)
	for i := range events {
		out[i] = events[i].Timestamp.Sub(base)
	}

	return out
}
