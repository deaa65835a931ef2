// Package playback replays finalized solver event logs at a throttled pace.
//
// Overview:
//
//   - Play walks an event log strictly in order and hands each record to a
//     caller-supplied sink, waiting a fixed interval between deliveries.
//   - The log is treated as immutable input: playback never feeds back into
//     a solve and never reorders, drops, or rewrites events.
//   - Cancellation is cooperative: a canceled context stops the replay
//     between deliveries, so the sink always observes an exact prefix.
//
// When to use:
//
//   - Animating a search trace in a UI at human speed.
//   - Streaming a stored run over a socket without flooding the client.
//   - Re-driving any consumer that expects events one at a time.
//
// Timeline converts a log's timestamps into offsets from the first event,
// which suits progress bars and scrubbing controls.
package playback
