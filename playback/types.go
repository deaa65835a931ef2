// Package playback defines the types and configuration options for the
// trace replay driver.
//
// Play delivers an already-finalized solver event log to a sink callback at
// a fixed pace, for animation or streaming. The log is consumed strictly in
// order and never mutated; pacing is the only concern of this package.
//
// Options:
//
//	– Interval: delay between consecutive deliveries. The first event is
//	  delivered immediately; 0 disables pacing entirely (immediate
//	  sequential delivery).
//
// Errors (sentinel):
//
//	– ErrNilSink if the delivery callback is nil.
//
// Example usage:
//
//	err := playback.Play(ctx, res.Events, func(ev bnb.Event) error {
//	    fmt.Println(ev.Message)
//	    return nil
//	}, playback.WithInterval(100*time.Millisecond))
package playback

import (
	"errors"
	"time"

	"github.com/katalvlaran/tourbound/bnb"
)

// Sentinel errors returned by the playback driver.
var (
	// ErrNilSink indicates that a nil delivery callback was passed to Play.
	ErrNilSink = errors.New("playback: sink is nil")

	// ErrBadInterval indicates that a negative interval was requested.
	// Surfaced as a panic in WithInterval, never returned at runtime.
	ErrBadInterval = errors.New("playback: interval must be non-negative")
)

// Sink receives one event per delivery. Returning a non-nil error aborts
// the replay; the error is wrapped and surfaced by Play.
type Sink func(bnb.Event) error

// DefaultInterval is the delivery pace used when no option overrides it.
const DefaultInterval = 250 * time.Millisecond

// Options configures the behavior of Play.
type Options struct {
	Interval time.Duration // delay between deliveries; 0 = immediate
}

// Option represents a functional option for configuring Play.
type Option func(*Options)

// WithInterval sets the delay between consecutive deliveries.
// 0 disables pacing; negative values panic (invalid configuration).
func WithInterval(d time.Duration) Option {
	if d < 0 {
		panic(ErrBadInterval.Error())
	}
	return func(o *Options) {
		o.Interval = d
	}
}

// DefaultOptions returns an Options struct initialized with the default
// pace. Use this as a starting point for functional-option overrides.
func DefaultOptions() Options {
	return Options{
		Interval: DefaultInterval,
	}
}
